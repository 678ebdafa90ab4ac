package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/romano/internal/journal"
)

// HistoryOptions holds history-specific flags.
type HistoryOptions struct {
	*RootOptions
	Limit   int
	Command string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conversions",
		Long: `List the conversions recorded in the journal, oldest first.

Requires a journal: pass --journal or set "journal" in romano.yaml.`,
		Example: `  romano --journal romano.db history --limit 10
  romano --journal romano.db history --command a_decimal`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "show only the most recent n entries (0 for all)")
	cmd.Flags().StringVar(&opts.Command, "command", "", "show only entries of this command")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Journal == "" {
		return outputCommandError(formatter, ErrCodeJournal, errors.New("no journal configured: use --journal <path>"))
	}

	j, err := opts.openJournal()
	if err != nil {
		return outputCommandError(formatter, ErrCodeJournal, err)
	}
	defer j.Close()

	entries, err := j.List(cmd.Context(), journal.ListOptions{
		Command: opts.Command,
		Limit:   opts.Limit,
	})
	if err != nil {
		return outputCommandError(formatter, ErrCodeJournal, err)
	}

	if !formatter.IsText() {
		return formatter.Success(entries)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(formatter.Writer, "no entries")
		return err
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tCOMMAND\tINPUT\tRESULT")
	for _, e := range entries {
		result := e.Output
		if e.Unit != "" {
			result += " " + e.Unit
		}
		if e.Failed() {
			result = "error " + e.ErrorCode
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Seq, e.Command, e.Input, result)
	}
	return tw.Flush()
}
