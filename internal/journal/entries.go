package journal

import (
	"context"
	"fmt"
)

// Record appends e and returns it with ID and Seq filled in.
// A caller-provided ID is kept.
func (j *Journal) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = j.newID()
	}

	err := j.db.QueryRowContext(ctx, `
		INSERT INTO entries (id, seq, command, input, output, unit, error_code)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM entries), ?, ?, ?, ?, ?)
		RETURNING seq
	`,
		e.ID,
		e.Command,
		e.Input,
		e.Output,
		e.Unit,
		e.ErrorCode,
	).Scan(&e.Seq)
	if err != nil {
		return Entry{}, fmt.Errorf("record entry: %w", err)
	}

	j.logger.Debug("journal entry recorded",
		"id", e.ID,
		"seq", e.Seq,
		"command", e.Command,
		"error_code", e.ErrorCode,
	)
	return e, nil
}

// ListOptions filters List.
type ListOptions struct {
	// Command keeps only entries for this command when non-empty.
	Command string

	// Limit keeps only the most recent Limit entries when positive.
	Limit int
}

// List returns entries oldest first (ORDER BY seq ASC, id ASC COLLATE BINARY).
// Returns an empty slice (not nil) when nothing matches.
func (j *Journal) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, seq, command, input, output, unit, error_code
		FROM (
			SELECT id, seq, command, input, output, unit, error_code
			FROM entries
			WHERE ? = '' OR command = ?
			ORDER BY seq DESC
			LIMIT ?
		)
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, opts.Command, opts.Command, limit)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Seq, &e.Command, &e.Input, &e.Output, &e.Unit, &e.ErrorCode); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

// Count returns the number of recorded entries.
func (j *Journal) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := j.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}
