package glpk

import (
	"context"
	"fmt"
	"math"
	"runtime"

	glp "github.com/lukpank/go-glpk/glpk"

	"github.com/ai4da/courses.om-686/model"
	"github.com/ai4da/courses.om-686/solve"
)

// Backend solves models with GLPK.
type Backend struct {
	opts solve.Options
}

var _ solve.Solver = (*Backend)(nil)

// New returns a GLPK backend with the given options.
func New(opts solve.Options) *Backend {
	return &Backend{opts: opts}
}

// Solve lowers the model into a GLPK problem object and runs the solver.
// The call blocks; ctx is honored at the call boundaries only, since GLPK
// has no cancellation hook.
func (b *Backend) Solve(ctx context.Context, m *model.Model) (*solve.Solution, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := b.opts.Deadline(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// GLPK keeps its environment in thread-local state.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	lp := glp.New()
	defer lp.Delete()

	lp.SetProbName(m.Name())
	lp.SetObjName("obj")

	sense, objExpr, _ := m.Objective()
	if sense == model.Max {
		lp.SetObjDir(glp.MAX)
	} else {
		lp.SetObjDir(glp.MIN)
	}

	vars := m.Vars()
	first := lp.AddCols(len(vars))
	for i, v := range vars {
		j := first + i
		lp.SetColName(j, v.Name())
		setColBounds(lp, j, v)
		if v.Domain().IsInteger() {
			// IV with explicit bounds keeps clamped binary bounds intact,
			// so a binary fixed to 0 via Bounds stays fixed.
			lp.SetColKind(j, glp.IV)
		}
	}

	// Column 0 of the objective row is GLPK's constant term.
	lp.SetObjCoef(0, objExpr.Constant())
	objExpr.Visit(func(v *model.Var, coef float64) {
		lp.SetObjCoef(first+v.Col(), coef)
	})

	if cons := m.Constraints(); len(cons) > 0 {
		rfirst := lp.AddRows(len(cons))
		for i, c := range cons {
			r := rfirst + i
			lp.SetRowName(r, c.Name())

			// ind[0] and val[0] are ignored by SetMatRow.
			ind := []int32{0}
			val := []float64{0}
			c.Expr().Visit(func(v *model.Var, coef float64) {
				ind = append(ind, int32(first+v.Col()))
				val = append(val, coef)
			})
			lp.SetMatRow(r, ind, val)

			rhs := c.RHS() - c.Expr().Constant()
			switch c.Relation() {
			case model.GE:
				lp.SetRowBnds(r, glp.LO, rhs, 0)
			case model.EQ:
				lp.SetRowBnds(r, glp.FX, rhs, rhs)
			default:
				lp.SetRowBnds(r, glp.UP, 0, rhs)
			}
		}
	}

	smcp := glp.NewSmcp()
	if !b.opts.Verbose {
		smcp.SetMsgLev(glp.MSG_ERR)
	}
	if err := lp.Simplex(smcp); err != nil {
		return nil, fmt.Errorf("glpk: simplex: %w", err)
	}

	status := mapStatus(lp.Status())
	if !m.HasInteger() || !status.IsOptimal() {
		// A pure LP, or a relaxation that already settled the outcome
		// (infeasible or unbounded holds for the integer model too).
		sol := solutionFrom(status, lp.ObjVal(), vars, first, lp.ColPrim)
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return sol, nil
	}

	// Branch-and-cut on top of the solved relaxation. Presolve stays off so
	// integer infeasibility surfaces as a status instead of an error code.
	iocp := glp.NewIocp()
	iocp.SetPresolve(false)
	if err := lp.Intopt(iocp); err != nil {
		return nil, fmt.Errorf("glpk: intopt: %w", err)
	}

	status = mapStatus(lp.MipStatus())
	sol := solutionFrom(status, lp.MipObjVal(), vars, first, lp.MipColVal)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return sol, nil
}

// solutionFrom reads per-column values through colVal when the status
// carries a usable assignment.
func solutionFrom(status solve.Status, obj float64, vars []*model.Var, first int, colVal func(int) float64) *solve.Solution {
	if !status.HasSolution() {
		return solve.NewSolution(status, 0, nil)
	}

	values := make(map[string]float64, len(vars))
	for i, v := range vars {
		values[v.Name()] = colVal(first + i)
	}

	return solve.NewSolution(status, obj, values)
}

// setColBounds maps a variable's bound pair onto GLPK's bound types.
func setColBounds(lp *glp.Prob, j int, v *model.Var) {
	lb, ub := v.Bounds()
	loInf := math.IsInf(lb, -1)
	upInf := math.IsInf(ub, 1)
	switch {
	case loInf && upInf:
		lp.SetColBnds(j, glp.FR, 0, 0)
	case upInf:
		lp.SetColBnds(j, glp.LO, lb, 0)
	case loInf:
		lp.SetColBnds(j, glp.UP, 0, ub)
	case lb == ub:
		lp.SetColBnds(j, glp.FX, lb, ub)
	default:
		lp.SetColBnds(j, glp.DB, lb, ub)
	}
}

// mapStatus translates GLPK solution statuses onto solve.Status.
func mapStatus(st glp.SolStat) solve.Status {
	switch st {
	case glp.OPT:
		return solve.StatusOptimal
	case glp.FEAS:
		return solve.StatusFeasible
	case glp.INFEAS, glp.NOFEAS:
		return solve.StatusInfeasible
	case glp.UNBND:
		return solve.StatusUnbounded
	default:
		return solve.StatusUndefined
	}
}
