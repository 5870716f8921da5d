package solve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ai4da/courses.om-686/model"
)

// ErrNoValue indicates a solution lookup for a variable the solver never saw.
var ErrNoValue = errors.New("solve: no value for variable")

// Status is the termination status reported by a backend.
type Status int

const (
	// StatusUndefined means the backend produced no usable solution state.
	StatusUndefined Status = iota

	// StatusOptimal means a proven optimal solution was found.
	StatusOptimal

	// StatusFeasible means a feasible but not proven optimal solution.
	StatusFeasible

	// StatusInfeasible means no feasible assignment exists.
	StatusInfeasible

	// StatusUnbounded means the objective is unbounded over the feasible set.
	StatusUnbounded
)

// String returns the status in the lowercase form printed by the CLI.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "undefined"
	}
}

// IsOptimal reports whether the solution is proven optimal.
func (s Status) IsOptimal() bool { return s == StatusOptimal }

// HasSolution reports whether variable values are meaningful.
func (s Status) HasSolution() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// Options tunes a backend. The zero value is quiet solving with no limit.
type Options struct {
	// Verbose lets the backend emit its own progress log to stdout.
	Verbose bool

	// TimeLimit bounds the whole solve when positive. Backends honor it
	// through the context deadline Deadline derives, checked at their call
	// boundaries; a GLPK run that has already started is not interrupted.
	TimeLimit time.Duration
}

// Deadline derives the context a backend should honor for these options.
// Without a time limit the parent context is returned with a no-op cancel.
func (o Options) Deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.TimeLimit <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, o.TimeLimit)
}

// Solver computes a variable assignment for a declared model.
type Solver interface {
	// Solve blocks until the backend terminates. The returned error covers
	// backend failures (missing license, lowering mistakes); infeasibility
	// and unboundedness are statuses on the Solution, not errors.
	Solve(ctx context.Context, m *model.Model) (*Solution, error)
}

// Solution is the assignment returned by a backend.
type Solution struct {
	status    Status
	objective float64
	values    map[string]float64
}

// NewSolution wraps a backend's result. The values map is keyed by full
// variable name and is owned by the Solution afterwards.
func NewSolution(status Status, objective float64, values map[string]float64) *Solution {
	if values == nil {
		values = map[string]float64{}
	}

	return &Solution{status: status, objective: objective, values: values}
}

// Status returns the termination status.
func (s *Solution) Status() Status { return s.status }

// Objective returns the objective value. Meaningful only when
// Status().HasSolution() holds.
func (s *Solution) Objective() float64 { return s.objective }

// Value returns the assigned value of v.
func (s *Solution) Value(v *model.Var) (float64, error) {
	return s.ByName(v.Name())
}

// ByName returns the assigned value of the named variable.
func (s *Solution) ByName(name string) (float64, error) {
	val, ok := s.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoValue, name)
	}

	return val, nil
}

// Values returns a copy of the full assignment keyed by variable name.
func (s *Solution) Values() map[string]float64 {
	out := make(map[string]float64, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}

	return out
}
