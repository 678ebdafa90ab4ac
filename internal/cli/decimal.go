package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/romano/internal/journal"
	"github.com/roach88/romano/internal/numeral"
	"github.com/roach88/romano/internal/render"
)

// DecimalResult is the structured output of a_decimal.
type DecimalResult struct {
	Numeral   string  `json:"numeral" yaml:"numeral"`
	Value     float64 `json:"value" yaml:"value"`
	Whole     int     `json:"whole" yaml:"whole"`
	Twelfths  int     `json:"twelfths" yaml:"twelfths"`
	Canonical string  `json:"canonical" yaml:"canonical"`
}

// NewDecimalCommand creates the a_decimal command.
func NewDecimalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "a_decimal <numeral>",
		Aliases: []string{"to-decimal"},
		Short:   "Convert a Roman numeral to a decimal number",
		Long: `Convert a Roman numeral, optionally followed by a fraction in twelfths,
to its decimal value.

The fraction is written S (semis, 6/12) followed by up to five dots (·, 1/12
each): "XII·" is 12 1/12, "IIS··" is 2 8/12. Lowercase letters and the
look-alike dots ". • ⋅ ∙" are accepted; "Nihil" is zero.`,
		Example: `  romano a_decimal MCMXCIV
  romano a_decimal "XIIS·"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecimal(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDecimal(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	text := numeral.Normalize(input)
	logger.Debug("decoding numeral", "input", input, "normalized", text)

	n, err := numeral.Parse(text)
	if err != nil {
		opts.record(cmd.Context(), journal.Entry{
			Command:   "a_decimal",
			Input:     input,
			ErrorCode: render.ErrorCode(err),
		})
		return outputDomainError(formatter, err)
	}

	value := render.Float(n.Value(), opts.Precision)
	opts.record(cmd.Context(), journal.Entry{
		Command: "a_decimal",
		Input:   input,
		Output:  value,
	})

	return formatter.Result(value, DecimalResult{
		Numeral:   input,
		Value:     n.Value(),
		Whole:     n.Whole,
		Twelfths:  n.Twelfths,
		Canonical: numeral.Display(n),
	})
}
