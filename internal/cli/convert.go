package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/romano/internal/journal"
	"github.com/roach88/romano/internal/measure"
	"github.com/roach88/romano/internal/render"
)

// ConvertResult is the structured output of conversion_unidades.
type ConvertResult struct {
	Amount float64 `json:"amount" yaml:"amount"`
	From   string  `json:"from" yaml:"from"`
	Value  float64 `json:"value" yaml:"value"`
	Unit   string  `json:"unit" yaml:"unit"`
}

// NewConvertCommand creates the conversion_unidades command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversion_unidades <amount> <from> <to|modern>",
		Aliases: []string{"convert"},
		Short:   "Convert between Roman units or to metric units",
		Long: `Convert an amount of one Roman unit to another unit of the same category,
or to the metric base unit of its category with the target "modern"
(meter for length, kilogram for weight, liter for capacity).

Unit names are matched case-insensitively; "mille passus" and
"mille-passus" both name mille_passus. Run "romano unidades" for the list.`,
		Example: `  romano conversion_unidades 1 stadium passus
  romano conversion_unidades 2 passus modern`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runConvert(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	amount, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		return outputCommandError(formatter, ErrCodeInvalidArgument, invalidNumberArg("amount", args[0]))
	}

	reg, err := opts.registry()
	if err != nil {
		return outputDomainError(formatter, err)
	}

	from := measure.NormalizeName(args[1])
	target := measure.NormalizeName(args[2])
	opts.logger().Debug("converting", "amount", amount, "from", from, "to", target)

	input := strings.Join(args, " ")
	q, err := reg.Convert(amount, from, target)
	if err != nil {
		opts.record(cmd.Context(), journal.Entry{
			Command:   "conversion_unidades",
			Input:     input,
			ErrorCode: render.ErrorCode(err),
		})
		return outputDomainError(formatter, err)
	}

	value := render.Float(q.Value, opts.Precision)
	opts.record(cmd.Context(), journal.Entry{
		Command: "conversion_unidades",
		Input:   input,
		Output:  value,
		Unit:    q.Unit,
	})

	return formatter.Result(value, ConvertResult{
		Amount: amount,
		From:   from,
		Value:  q.Value,
		Unit:   q.Unit,
	})
}
