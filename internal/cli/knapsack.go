package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ai4da/courses.om-686/instance"
	"github.com/ai4da/courses.om-686/solve"
	"github.com/ai4da/courses.om-686/solve/glpk"
)

// NewKnapsackCommand creates the "knapsack" subcommand.
func NewKnapsackCommand() *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Solve a 0/1 knapsack",
		Long: `Solve the 0/1 knapsack: pick the item subset of maximum total value
whose total weight fits the capacity.

Example:
  om686 knapsack --data jewels.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := instance.LoadKnapsack(flags.data)
			if err != nil {
				return err
			}
			m, take, err := k.Model()
			if err != nil {
				return err
			}

			if flags.lpPath != "" {
				if err := m.ExportLP(flags.lpPath); err != nil {
					return err
				}
			}

			backend := glpk.New(solve.Options{Verbose: verbose})
			sol, err := backend.Solve(cmd.Context(), m)
			if err != nil {
				return err
			}

			fmt.Printf("status: %s\n", sol.Status())
			if sol.Status().HasSolution() {
				fmt.Printf("total value: %g\n", sol.Objective())
				chosen, err := k.Chosen(sol, take)
				if err != nil {
					return err
				}
				for _, it := range chosen {
					fmt.Printf("take %s (value %g, weight %g)\n", it.Name, it.Value, it.Weight)
				}
			}

			if flags.outPath != "" && sol.Status().HasSolution() {
				return instance.WriteSolution(flags.outPath, sol)
			}

			return nil
		},
	}
	addSolveFlags(cmd, flags)

	return cmd
}
