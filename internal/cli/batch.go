package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/romano/internal/batch"
	"github.com/roach88/romano/internal/journal"
)

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Run the conversions listed in a YAML file",
		Long: `Run decode, encode and convert steps from a YAML file and check each
result against its optional expectation.

	name: ledger
	steps:
	  - op: decode
	    input: "XII·"
	    expect: {value: 12.083333, tolerance: 0.000001}
	  - op: encode
	    value: 12.5
	    expect: {numeral: XIIS}
	  - op: convert
	    amount: 1
	    from: stadium
	    to: passus
	    expect: {value: 125}

Exit code 0 if every step passed, 1 if any step failed, 2 if the file
cannot be read.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	f, err := batch.Load(path)
	if err != nil {
		return outputCommandError(formatter, ErrCodeBatchFile, err)
	}

	reg, err := opts.registry()
	if err != nil {
		return outputDomainError(formatter, err)
	}

	logger.Debug("running batch", "path", path, "name", f.Name, "steps", len(f.Steps))
	runner := batch.NewRunner(reg,
		batch.WithLogger(logger),
		batch.WithPrecision(opts.Precision),
	)

	report, err := runner.Run(cmd.Context(), f)
	if err != nil {
		return outputCommandError(formatter, ErrCodeGeneric, err)
	}

	summary := fmt.Sprintf("%d passed, %d failed", report.Passed, report.Failed)
	entry := journal.Entry{Command: "batch", Input: path, Output: summary}
	if !report.OK() {
		entry.ErrorCode = "BATCH_FAILED"
	}
	opts.record(cmd.Context(), entry)

	if formatter.IsText() {
		if err := report.WriteText(formatter.Writer); err != nil {
			return err
		}
	} else if err := formatter.Success(report); err != nil {
		return err
	}

	if !report.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("batch %s: %s", f.Name, summary))
	}
	return nil
}
