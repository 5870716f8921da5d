// Package model builds linear and mixed-integer optimization models
// declaratively: index sets of string keys, decision-variable families over
// those sets, linear expressions, relational constraints, and a single
// minimize/maximize objective.
//
// A Model is a description, not a solver. Hand it to a solve.Solver backend
// (see solve/glpk) to obtain variable values, export it with WriteLP for
// inspection, or take a dense gonum snapshot with Dense.
//
// Typical use:
//
//	m := model.New("mix")
//	x, _ := m.NewVars("make", model.Continuous, products)
//	obj := model.NewExpr()
//	for _, p := range products {
//		obj.Add(profit[p], x.MustAt(p))
//	}
//	m.Maximize(obj)
//
// Errors:
//
//	ErrEmptyName      - model, variable, or constraint name is empty or has spaces.
//	ErrDuplicateVar   - variable name already declared on this model.
//	ErrDuplicateCon   - constraint name already declared on this model.
//	ErrEmptyIndexSet  - a variable family was declared over an empty set.
//	ErrUnknownKey     - VarSet lookup with a key tuple that was never declared.
//	ErrNilVar         - an expression term references a nil variable.
//	ErrForeignVar     - an expression references a variable from another model.
//	ErrBadBounds      - lower bound above upper bound.
//	ErrEmptyExpr      - constraint or objective with no variable terms.
//	ErrNoObjective    - model validated or lowered without an objective.
package model
