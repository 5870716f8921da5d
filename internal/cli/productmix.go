package cli

import (
	"github.com/spf13/cobra"

	"github.com/ai4da/courses.om-686/instance"
)

// NewProductMixCommand creates the "productmix" subcommand.
func NewProductMixCommand() *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "productmix",
		Short: "Solve a product-mix LP",
		Long: `Solve the introductory product-mix LP: choose production quantities
that maximize total profit subject to resource capacities.

Example:
  om686 productmix --data mix.yaml --lp mix.lp --out solution.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pm, err := instance.LoadProductMix(flags.data)
			if err != nil {
				return err
			}
			m, _, err := pm.Model()
			if err != nil {
				return err
			}

			return solveAndReport(cmd.Context(), m, flags)
		},
	}
	addSolveFlags(cmd, flags)

	return cmd
}
