package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/romano/internal/render"
)

// UnitRow is one unit in the unidades listing.
type UnitRow struct {
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category" yaml:"category"`
	Factor   float64 `json:"factor" yaml:"factor"`
	Base     string  `json:"base" yaml:"base"`
}

// NewUnitsCommand creates the unidades command.
func NewUnitsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "unidades",
		Aliases:       []string{"units"},
		Short:         "List the known Roman units",
		Long:          "List every Roman unit with its category and its size in the category's metric base unit.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnits(rootOpts, cmd)
		},
	}

	return cmd
}

func runUnits(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	reg, err := opts.registry()
	if err != nil {
		return outputDomainError(formatter, err)
	}

	units := reg.Units()
	rows := make([]UnitRow, 0, len(units))
	for _, u := range units {
		rows = append(rows, UnitRow{
			Name:     u.Name,
			Category: string(u.Category),
			Factor:   u.Factor,
			Base:     u.Base().Symbol,
		})
	}

	if !formatter.IsText() {
		return formatter.Success(rows)
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tFACTOR\tBASE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Category, render.Float(r.Factor, opts.Precision), r.Base)
	}
	return tw.Flush()
}
