package cli

import (
	"context"

	"github.com/roach88/romano/internal/journal"
)

// openJournal opens the configured journal, or returns nil when none is set.
func (o *RootOptions) openJournal() (*journal.Journal, error) {
	if o.Journal == "" {
		return nil, nil
	}
	return journal.Open(o.Journal, journal.WithLogger(o.logger()))
}

// record appends e to the configured journal. Journal failures are logged
// and never change the outcome of the conversion.
func (o *RootOptions) record(ctx context.Context, e journal.Entry) {
	if o.Journal == "" {
		return
	}

	j, err := o.openJournal()
	if err != nil {
		o.logger().Warn("journal unavailable", "path", o.Journal, "error", err)
		return
	}
	defer j.Close()

	if _, err := j.Record(ctx, e); err != nil {
		o.logger().Warn("journal record failed", "path", o.Journal, "command", e.Command, "error", err)
	}
}
