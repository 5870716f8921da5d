// Package cli implements the cobra commands of the om686 binary. Each
// course problem gets its own subcommand and file; root.go holds the root
// command, the global --verbose flag, and the shared zap logger.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verbose is bound to the persistent --verbose flag and shared by all
// subcommands. It also turns on the solver backend's own progress log.
var verbose bool

// logger is a no-op unless --verbose is set. Subcommands log diagnostics
// here and print results to stdout directly.
var logger = zap.NewNop()

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "om686",
		Short: "Optimization modeling course toolkit",
		Long: `om686 builds and solves the course's optimization problems: the
product-mix LP, the 0/1 knapsack, capacitated facility location,
two-echelon supply-network design, and the newsvendor.

Instances load from YAML data files (CSV for demand histories), solve
through the GLPK backend, and can export LP files and solution CSVs.`,

		// Errors are formatted by Execute; keep cobra quiet.
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = l

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable diagnostic logging and solver output")

	rootCmd.AddCommand(
		NewProductMixCommand(),
		NewKnapsackCommand(),
		NewFacilityCommand(),
		NewNetworkCommand(),
		NewNewsvendorCommand(),
		NewGenDataCommand(),
	)

	return rootCmd
}

// Execute runs the root command and exits nonzero on error.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
