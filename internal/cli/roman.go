package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/romano/internal/journal"
	"github.com/roach88/romano/internal/numeral"
	"github.com/roach88/romano/internal/render"
)

// RomanResult is the structured output of a_romano.
type RomanResult struct {
	Value    float64 `json:"value" yaml:"value"`
	Numeral  string  `json:"numeral" yaml:"numeral"`
	Whole    int     `json:"whole" yaml:"whole"`
	Twelfths int     `json:"twelfths" yaml:"twelfths"`
}

// NewRomanCommand creates the a_romano command.
func NewRomanCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "a_romano <value>",
		Aliases: []string{"to-roman"},
		Short:   "Convert a decimal number to a Roman numeral",
		Long: `Convert a number between 0 and 3999 11/12 to a Roman numeral.

The fractional part is rounded to the nearest twelfth (halves round up) and
written as S (6/12) plus up to five dots. Zero prints as "Nihil".`,
		Example: `  romano a_romano 1994
  romano a_romano 12.5`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoman(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRoman(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return outputCommandError(formatter, ErrCodeInvalidArgument, invalidNumberArg("value", input))
	}
	opts.logger().Debug("encoding value", "value", v)

	n, err := numeral.FromFloat(v)
	if err != nil {
		opts.record(cmd.Context(), journal.Entry{
			Command:   "a_romano",
			Input:     input,
			ErrorCode: render.ErrorCode(err),
		})
		return outputDomainError(formatter, err)
	}

	text := numeral.Display(n)
	opts.record(cmd.Context(), journal.Entry{
		Command: "a_romano",
		Input:   input,
		Output:  text,
	})

	return formatter.Result(text, RomanResult{
		Value:    v,
		Numeral:  n.String(),
		Whole:    n.Whole,
		Twelfths: n.Twelfths,
	})
}
