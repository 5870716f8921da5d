package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ai4da/courses.om-686/instance"
	"github.com/ai4da/courses.om-686/model"
	"github.com/ai4da/courses.om-686/solve"
	"github.com/ai4da/courses.om-686/solve/glpk"
)

// solveFlags are the flags shared by every model-solving subcommand.
type solveFlags struct {
	// data is the YAML instance file (required).
	data string

	// lpPath optionally exports the built model as an LP file.
	lpPath string

	// outPath optionally exports the solved assignment as CSV.
	outPath string

	// timeout bounds the solve; zero means no limit.
	timeout time.Duration
}

// addSolveFlags registers the shared flags on a subcommand.
func addSolveFlags(cmd *cobra.Command, flags *solveFlags) {
	cmd.Flags().StringVar(&flags.data, "data", "", "YAML instance file (required)")
	cmd.Flags().StringVar(&flags.lpPath, "lp", "", "Export the model in LP format to this path")
	cmd.Flags().StringVar(&flags.outPath, "out", "", "Export the solution as CSV to this path")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "Abort the solve after this duration (0 means no limit)")
	_ = cmd.MarkFlagRequired("data")
}

// solveAndReport exports, solves, prints, and writes one built model.
func solveAndReport(ctx context.Context, m *model.Model, flags *solveFlags) error {
	if flags.lpPath != "" {
		if err := m.ExportLP(flags.lpPath); err != nil {
			return err
		}
		logger.Info("wrote LP file", zap.String("path", flags.lpPath))
	}

	backend := glpk.New(solve.Options{Verbose: verbose, TimeLimit: flags.timeout})
	start := time.Now()
	sol, err := backend.Solve(ctx, m)
	if err != nil {
		return err
	}
	logger.Info("solve finished",
		zap.String("problem", m.Name()),
		zap.String("status", sol.Status().String()),
		zap.Duration("elapsed", time.Since(start)))

	printSolution(os.Stdout, m, sol)

	if flags.outPath != "" && sol.Status().HasSolution() {
		if err := instance.WriteSolution(flags.outPath, sol); err != nil {
			return err
		}
		logger.Info("wrote solution CSV", zap.String("path", flags.outPath))
	}

	return nil
}

// printSolution writes the termination status and the nonzero variables of
// a solve as an aligned table.
func printSolution(w io.Writer, m *model.Model, sol *solve.Solution) {
	fmt.Fprintf(w, "problem: %s\n", m.Name())
	fmt.Fprintf(w, "status: %s\n", sol.Status())
	if !sol.Status().HasSolution() {
		return
	}
	fmt.Fprintf(w, "objective: %g\n", sol.Objective())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, v := range m.Vars() {
		val, err := sol.Value(v)
		if err != nil || val == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%g\n", v.Name(), val)
	}
	tw.Flush()
}
