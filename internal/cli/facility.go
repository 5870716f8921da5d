package cli

import (
	"github.com/spf13/cobra"

	"github.com/ai4da/courses.om-686/instance"
)

// NewFacilityCommand creates the "facility" subcommand.
func NewFacilityCommand() *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "facility",
		Short: "Solve a capacitated facility location MIP",
		Long: `Solve capacitated facility location: decide which facilities to open
and how to ship to customers at minimum fixed plus shipping cost.

Example:
  om686 facility --data facilities.yaml --out solution.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fl, err := instance.LoadFacilityLocation(flags.data)
			if err != nil {
				return err
			}
			m, _, err := fl.Model()
			if err != nil {
				return err
			}

			return solveAndReport(cmd.Context(), m, flags)
		},
	}
	addSolveFlags(cmd, flags)

	return cmd
}
