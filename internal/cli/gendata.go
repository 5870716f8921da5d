package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ai4da/courses.om-686/demand"
	"github.com/ai4da/courses.om-686/instance"
)

// gendataFlags holds the flag values for the gendata command.
type gendataFlags struct {
	n    int
	seed uint64
	out  string
}

// NewGenDataCommand creates the "gendata" subcommand, which reproduces the
// course's synthetic newsvendor demand history.
func NewGenDataCommand() *cobra.Command {
	flags := &gendataFlags{}

	cmd := &cobra.Command{
		Use:   "gendata",
		Short: "Generate a synthetic demand history CSV",
		Long: `Generate the course's synthetic newsvendor demand history: uniform
features on [-1, 2) and a rounded nonlinear demand response with
Normal noise. The same seed reproduces the same file.

Example:
  om686 gendata --n 100 --seed 123 --out nv_hist_data_100.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obs, err := demand.Generate(flags.n, flags.seed)
			if err != nil {
				return err
			}
			if err := instance.WriteDemandHistory(flags.out, obs); err != nil {
				return err
			}
			fmt.Printf("wrote %d observations to %s\n", len(obs), flags.out)

			return nil
		},
	}

	cmd.Flags().IntVar(&flags.n, "n", 100, "Number of observations")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 123, "RNG seed")
	cmd.Flags().StringVar(&flags.out, "out", "", "Output CSV path (required)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
