package model

import (
	"fmt"
	"strconv"
	"strings"
)

// term is one (coefficient, variable) pair of a linear expression.
type term struct {
	v    *Var
	coef float64
}

// Expr is a linear expression: an ordered list of (coefficient, variable)
// terms plus a constant. Adding a variable twice coalesces coefficients in
// place, so term order is first-mention order and lowering is deterministic.
//
// The zero value is not usable; construct with NewExpr, Term, Sum, or Dot.
type Expr struct {
	terms    []term
	index    map[*Var]int
	constant float64
}

// NewExpr returns an empty expression.
func NewExpr() *Expr {
	return &Expr{index: make(map[*Var]int)}
}

// Term returns the single-term expression coef*v.
func Term(coef float64, v *Var) *Expr {
	return NewExpr().Add(coef, v)
}

// Sum returns the expression v1 + v2 + ... + vn.
func Sum(vars ...*Var) *Expr {
	e := NewExpr()
	for _, v := range vars {
		e.Add(1, v)
	}

	return e
}

// Dot returns the inner product coefs·vars.
func Dot(coefs []float64, vars []*Var) (*Expr, error) {
	if len(coefs) != len(vars) {
		return nil, fmt.Errorf("%w: %d coefficients, %d variables",
			ErrDimension, len(coefs), len(vars))
	}

	e := NewExpr()
	for i, v := range vars {
		e.Add(coefs[i], v)
	}

	return e, nil
}

// Add accumulates coef*v onto the expression and returns it for chaining.
// A repeated variable coalesces into its existing term. Nil variables are
// recorded as-is and rejected when the expression is attached to a model.
func (e *Expr) Add(coef float64, v *Var) *Expr {
	if i, ok := e.index[v]; ok {
		e.terms[i].coef += coef

		return e
	}

	e.index[v] = len(e.terms)
	e.terms = append(e.terms, term{v: v, coef: coef})

	return e
}

// AddConst accumulates a constant onto the expression.
func (e *Expr) AddConst(c float64) *Expr {
	e.constant += c

	return e
}

// AddExpr accumulates every term and the constant of o onto e.
func (e *Expr) AddExpr(o *Expr) *Expr {
	for _, t := range o.terms {
		e.Add(t.coef, t.v)
	}
	e.constant += o.constant

	return e
}

// Scale multiplies every coefficient and the constant by k.
func (e *Expr) Scale(k float64) *Expr {
	for i := range e.terms {
		e.terms[i].coef *= k
	}
	e.constant *= k

	return e
}

// Constant returns the constant part of the expression.
func (e *Expr) Constant() float64 { return e.constant }

// NumTerms returns the number of distinct variable terms, including terms
// whose coefficients coalesced to zero.
func (e *Expr) NumTerms() int { return len(e.terms) }

// Coef returns the coefficient of v, or 0 when v does not appear.
func (e *Expr) Coef(v *Var) float64 {
	if i, ok := e.index[v]; ok {
		return e.terms[i].coef
	}

	return 0
}

// Visit calls fn for each (variable, coefficient) term in first-mention
// order. Zero-coalesced terms are skipped.
func (e *Expr) Visit(fn func(v *Var, coef float64)) {
	for _, t := range e.terms {
		if t.coef == 0 {
			continue
		}
		fn(t.v, t.coef)
	}
}

// String renders the expression for diagnostics, e.g. "3 x - 2 y + 7".
func (e *Expr) String() string {
	var b strings.Builder
	wrote := false
	e.Visit(func(v *Var, coef float64) {
		writeTerm(&b, coef, v.Name(), !wrote)
		wrote = true
	})
	if e.constant != 0 || !wrote {
		writeTerm(&b, e.constant, "", !wrote)
	}

	return b.String()
}

// writeTerm appends "± coef name" with LP-style sign spacing. A coefficient
// of magnitude 1 next to a variable omits the number. An empty name writes a
// bare constant.
func writeTerm(b *strings.Builder, coef float64, name string, first bool) {
	mag := coef
	switch {
	case first && coef < 0:
		b.WriteString("- ")
		mag = -coef
	case first:
		// leading positive term carries no sign
	case coef < 0:
		b.WriteString(" - ")
		mag = -coef
	default:
		b.WriteString(" + ")
	}

	if name == "" {
		b.WriteString(strconv.FormatFloat(mag, 'g', -1, 64))

		return
	}
	if mag != 1 {
		b.WriteString(strconv.FormatFloat(mag, 'g', -1, 64))
		b.WriteByte(' ')
	}
	b.WriteString(name)
}

// check validates the expression against the owning model.
func (e *Expr) check(m *Model) error {
	if e == nil || len(e.terms) == 0 {
		return ErrEmptyExpr
	}
	for _, t := range e.terms {
		if t.v == nil {
			return ErrNilVar
		}
		if t.v.owner != m {
			return fmt.Errorf("%w: %s", ErrForeignVar, t.v.name)
		}
	}

	return nil
}
