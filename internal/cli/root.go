package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/romano/internal/measure"
)

// Version is the romano release.
const Version = "0.3.0"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	ConfigFile string
	Journal    string // SQLite journal path, empty to disable
	Precision  int    // decimals for values, -1 for shortest

	// Logger receives diagnostics on stderr. Set by the root command.
	Logger *slog.Logger

	// Registry overrides the built-in unit registry (tests).
	Registry *measure.Registry
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the romano CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Format: "text", Precision: -1}

	cmd := &cobra.Command{
		Use:     "romano",
		Short:   "Roman numerals and Roman measures",
		Long:    "Convert Roman numerals (with twelfths) to decimals and back, and Roman units of length, weight and capacity to metric units or to each other.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(opts.ConfigFile, cmd.Root().PersistentFlags())
			if err != nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s: %v", ErrCodeConfig, err))
			}
			applyConfig(v, opts)

			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s: invalid format %q: must be one of %v", ErrCodeConfig, opts.Format, ValidFormats))
			}

			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			opts.Logger.Debug("config loaded",
				"config", v.ConfigFileUsed(),
				"format", opts.Format,
				"precision", opts.Precision,
				"journal", opts.Journal,
			)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, cfgKeyVerbose, "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, cfgKeyFormat, "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: $ROMANO_CONFIG or <user config dir>/romano/romano.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Journal, cfgKeyJournal, "", "record conversions in this SQLite journal")
	cmd.PersistentFlags().IntVar(&opts.Precision, cfgKeyPrecision, -1, "decimals in numeric output (-1 for shortest)")

	// Add subcommands
	cmd.AddCommand(NewDecimalCommand(opts))
	cmd.AddCommand(NewRomanCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewUnitsCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
// Commands print their own errors; anything else (unknown command, wrong
// argument count) is printed here.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == ExitCommandError && exitErr.Err == nil {
			// Raised before any formatter existed (config, format flag).
			fmt.Fprintln(stderr, "Error:", exitErr.Message)
		}
		return exitErr.Code
	}

	fmt.Fprintln(stderr, "Error:", err)
	return ExitCommandError
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logger returns the configured logger, or one that discards when a
// command runs without the root (tests).
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// registry returns the unit registry commands convert with.
func (o *RootOptions) registry() (*measure.Registry, error) {
	if o.Registry != nil {
		return o.Registry, nil
	}
	return measure.Default()
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}
