package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ai4da/courses.om-686/demand"
	"github.com/ai4da/courses.om-686/instance"
	"github.com/ai4da/courses.om-686/problems"
	"github.com/ai4da/courses.om-686/solve"
	"github.com/ai4da/courses.om-686/solve/glpk"
)

// errNewsvendorInput indicates the newsvendor command was invoked without a
// usable demand description.
var errNewsvendorInput = errors.New("either --history or --mean with a positive --stddev is required")

// newsvendorFlags holds the flag values for the newsvendor command.
type newsvendorFlags struct {
	underage float64
	overage  float64

	// history switches to the data-driven modes.
	history string

	// mean/stddev parameterize the closed-form Normal mode.
	mean   float64
	stddev float64

	// scenarios additionally solves the scenario LP over the history.
	scenarios bool

	// plotPath optionally writes a demand histogram PNG.
	plotPath string
}

// NewNewsvendorCommand creates the "newsvendor" subcommand.
func NewNewsvendorCommand() *cobra.Command {
	flags := &newsvendorFlags{}

	cmd := &cobra.Command{
		Use:   "newsvendor",
		Short: "Compute newsvendor order quantities",
		Long: `Compute the single-period newsvendor order quantity three ways:
closed form under Normal demand (--mean/--stddev), as the empirical
critical-ratio quantile of a demand history CSV (--history), and as a
scenario LP over that history (--scenarios).

With a history, the demand regression on the observed features is
fitted and logged, and --plot writes a demand histogram PNG.

Examples:
  om686 newsvendor --underage 3 --overage 1 --mean 100 --stddev 15
  om686 newsvendor --underage 3 --overage 1 --history nv_hist.csv --scenarios`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNewsvendor(cmd, flags)
		},
	}

	cmd.Flags().Float64Var(&flags.underage, "underage", 0, "Cost per unit of unmet demand (required)")
	cmd.Flags().Float64Var(&flags.overage, "overage", 0, "Cost per unit of leftover stock (required)")
	cmd.Flags().StringVar(&flags.history, "history", "", "Demand history CSV in the course layout")
	cmd.Flags().Float64Var(&flags.mean, "mean", 0, "Demand mean for the Normal closed form")
	cmd.Flags().Float64Var(&flags.stddev, "stddev", 0, "Demand standard deviation for the Normal closed form")
	cmd.Flags().BoolVar(&flags.scenarios, "scenarios", false, "Also solve the scenario LP over the history")
	cmd.Flags().StringVar(&flags.plotPath, "plot", "", "Write a demand histogram PNG to this path")
	_ = cmd.MarkFlagRequired("underage")
	_ = cmd.MarkFlagRequired("overage")

	return cmd
}

func runNewsvendor(cmd *cobra.Command, flags *newsvendorFlags) error {
	nv := problems.Newsvendor{Underage: flags.underage, Overage: flags.overage}
	ratio, err := nv.CriticalRatio()
	if err != nil {
		return err
	}
	fmt.Printf("critical ratio: %.4f\n", ratio)

	if flags.history == "" {
		// Catches both a forgotten --stddev and a meaningless value before
		// the quantile math turns it into a cost-ratio error.
		if flags.stddev <= 0 {
			return errNewsvendorInput
		}
		q, err := nv.NormalQuantity(flags.mean, flags.stddev)
		if err != nil {
			return err
		}
		fmt.Printf("normal quantity: %.2f\n", q)

		return nil
	}

	obs, err := instance.ReadDemandHistory(flags.history)
	if err != nil {
		return err
	}
	demands := demand.Demands(obs)

	q, err := nv.EmpiricalQuantity(demands)
	if err != nil {
		return err
	}
	fmt.Printf("empirical quantity: %.2f\n", q)

	if lm, err := demand.FitLinear(obs); err != nil {
		// The regression is advisory; history without enough observations
		// still yields the quantile answer.
		logger.Warn("demand regression skipped", zap.Error(err))
	} else {
		logger.Info("fitted demand regression",
			zap.Float64("intercept", lm.Intercept),
			zap.Float64s("coefficients", lm.Coef))
	}

	if flags.plotPath != "" {
		if err := saveHistogram(flags.plotPath, demands); err != nil {
			return err
		}
		logger.Info("wrote demand histogram", zap.String("path", flags.plotPath))
	}

	if !flags.scenarios {
		return nil
	}

	m, vars, err := nv.ScenarioModel(demands)
	if err != nil {
		return err
	}
	backend := glpk.New(solve.Options{Verbose: verbose})
	sol, err := backend.Solve(cmd.Context(), m)
	if err != nil {
		return err
	}
	fmt.Printf("scenario LP status: %s\n", sol.Status())
	if sol.Status().HasSolution() {
		sq, err := sol.Value(vars.Quantity)
		if err != nil {
			return err
		}
		fmt.Printf("scenario quantity: %.2f\n", sq)
		fmt.Printf("expected cost: %.2f\n", sol.Objective())
	}

	return nil
}

// saveHistogram writes a demand histogram PNG.
func saveHistogram(path string, demands []float64) error {
	p := plot.New()
	p.Title.Text = "Demand history"
	p.X.Label.Text = "demand"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(demands), 16)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
