package model

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// DenseForm is a dense matrix snapshot of a model:
//
//	sense  c'x   subject to   A x  rel  b
//
// with one column per variable in declaration order and one row per
// constraint in declaration order. Constraint constants are folded into b.
// It exists for inspection and tests; solver backends consume the model's
// sparse rows directly.
type DenseForm struct {
	Sense Sense

	// C holds the objective coefficients, one per column.
	C *mat.VecDense

	// ObjConst is the constant part of the objective expression.
	ObjConst float64

	// A is the constraint coefficient matrix, NumConstraints x NumVars.
	// Nil when the model has no constraints.
	A *mat.Dense

	// B holds the folded right-hand sides. Nil when A is nil.
	B *mat.VecDense

	// Rel holds the per-row relations, parallel to B.
	Rel []Relation
}

// Dense lowers the model into its dense matrix form.
func (m *Model) Dense() (*DenseForm, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	n := m.NumVars()
	d := &DenseForm{
		Sense:    m.obj.sense,
		C:        mat.NewVecDense(n, nil),
		ObjConst: m.obj.expr.Constant(),
	}
	m.obj.expr.Visit(func(v *Var, coef float64) {
		d.C.SetVec(v.col, coef)
	})

	r := m.NumConstraints()
	if r == 0 {
		return d, nil
	}

	d.A = mat.NewDense(r, n, nil)
	d.B = mat.NewVecDense(r, nil)
	d.Rel = make([]Relation, r)
	for i, c := range m.cons {
		c.expr.Visit(func(v *Var, coef float64) {
			d.A.Set(i, v.col, coef)
		})
		d.B.SetVec(i, c.rhs-c.expr.Constant())
		d.Rel[i] = c.rel
	}

	return d, nil
}

// String renders the snapshot with gonum's matrix formatter.
func (d *DenseForm) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", d.Sense)
	fmt.Fprintf(&b, "c = %v\n", mat.Formatted(d.C.T(), mat.Prefix("    "), mat.Squeeze()))
	if d.A == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "A = %v\n", mat.Formatted(d.A, mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(&b, "b = %v\n", mat.Formatted(d.B.T(), mat.Prefix("    "), mat.Squeeze()))

	return b.String()
}
