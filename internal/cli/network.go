package cli

import (
	"github.com/spf13/cobra"

	"github.com/ai4da/courses.om-686/instance"
)

// NewNetworkCommand creates the "network" subcommand.
func NewNetworkCommand() *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "network",
		Short: "Solve a two-echelon supply-network LP",
		Long: `Solve supply-network design: route flow from plants through depots to
customers at minimum shipping cost, respecting plant capacities and
depot throughput limits.

Example:
  om686 network --data network.yaml --lp network.lp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sn, err := instance.LoadSupplyNetwork(flags.data)
			if err != nil {
				return err
			}
			m, _, err := sn.Model()
			if err != nil {
				return err
			}

			return solveAndReport(cmd.Context(), m, flags)
		},
	}
	addSolveFlags(cmd, flags)

	return cmd
}
