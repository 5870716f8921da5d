package model

import (
	"fmt"
	"math"
	"strings"
)

// objective is the single optimization target of a model.
type objective struct {
	sense Sense
	expr  *Expr
}

// Constraint is one relational row: expr REL rhs. The expression's constant
// part is folded into the right-hand side when the model is lowered.
type Constraint struct {
	name string
	expr *Expr
	rel  Relation
	rhs  float64
}

// Name returns the constraint name.
func (c *Constraint) Name() string { return c.name }

// Expr returns the left-hand side expression.
func (c *Constraint) Expr() *Expr { return c.expr }

// Relation returns the row relation.
func (c *Constraint) Relation() Relation { return c.rel }

// RHS returns the declared right-hand side, before constant folding.
func (c *Constraint) RHS() float64 { return c.rhs }

// Model is a declarative linear or mixed-integer program under construction.
// It is not safe for concurrent mutation; build it in one goroutine and hand
// it to a solver.
type Model struct {
	name string

	vars     []*Var
	varNames map[string]*Var

	cons     []*Constraint
	conNames map[string]struct{}

	obj *objective
}

// New returns an empty model with the given problem name.
func New(name string) *Model {
	return &Model{
		name:     name,
		varNames: make(map[string]*Var),
		conNames: make(map[string]struct{}),
	}
}

// Name returns the problem name.
func (m *Model) Name() string { return m.name }

// NumVars returns the number of declared variables (columns).
func (m *Model) NumVars() int { return len(m.vars) }

// NumConstraints returns the number of declared constraints (rows).
func (m *Model) NumConstraints() int { return len(m.cons) }

// Vars returns all variables in declaration order. The slice is shared;
// callers must not modify it.
func (m *Model) Vars() []*Var { return m.vars }

// Constraints returns all constraints in declaration order. The slice is
// shared; callers must not modify it.
func (m *Model) Constraints() []*Constraint { return m.cons }

// Var returns a declared variable by full name.
func (m *Model) Var(name string) (*Var, bool) {
	v, ok := m.varNames[name]

	return v, ok
}

// HasInteger reports whether any variable has an integer or binary domain.
// Solver backends use it to pick the MIP path.
func (m *Model) HasInteger() bool {
	for _, v := range m.vars {
		if v.dom.IsInteger() {
			return true
		}
	}

	return false
}

// validName rejects empty names and names with whitespace, which would not
// survive LP export.
func validName(name string) error {
	if name == "" || strings.ContainsAny(name, " \t\n") {
		return fmt.Errorf("%w: %q", ErrEmptyName, name)
	}

	return nil
}

// NewVar declares a single decision variable with the given domain tag.
// Options adjust bounds; binary bounds are clamped to [0, 1].
func (m *Model) NewVar(name string, dom Domain, opts ...VarOption) (*Var, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if _, dup := m.varNames[name]; dup {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateVar, name)
	}

	v := &Var{owner: m, col: len(m.vars), name: name, dom: dom}
	v.lb, v.ub = defaultBounds(dom)
	for _, opt := range opts {
		opt(v)
	}
	if dom == Binary {
		v.lb, v.ub = math.Max(v.lb, 0), math.Min(v.ub, 1)
	}
	if v.lb > v.ub {
		return nil, fmt.Errorf("%w: %s has [%g, %g]", ErrBadBounds, name, v.lb, v.ub)
	}

	m.vars = append(m.vars, v)
	m.varNames[name] = v

	return v, nil
}

// NewVars declares a variable family over the cross product of the given
// index sets, one member per key tuple, named family(k1,...,kn). Every set
// must be non-empty and the family shares one domain and default bounds.
func (m *Model) NewVars(name string, dom Domain, sets ...[]string) (*VarSet, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: %s declared over no sets", ErrEmptyIndexSet, name)
	}
	size := 1
	for _, s := range sets {
		if len(s) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyIndexSet, name)
		}
		size *= len(s)
	}

	vs := &VarSet{
		name: name,
		dims: len(sets),
		vars: make(map[string]*Var, size),
		list: make([]*Var, 0, size),
	}

	keys := make([]string, len(sets))
	var walk func(depth int) error
	walk = func(depth int) error {
		if depth == len(sets) {
			v, err := m.NewVar(memberName(name, keys), dom)
			if err != nil {
				return err
			}
			vs.vars[strings.Join(keys, keySep)] = v
			vs.list = append(vs.list, v)

			return nil
		}
		for _, k := range sets[depth] {
			keys[depth] = k
			if err := walk(depth + 1); err != nil {
				return err
			}
		}

		return nil
	}
	if err := walk(0); err != nil {
		return nil, err
	}

	return vs, nil
}

// AddConstraint declares the row "expr rel rhs" under a unique name.
func (m *Model) AddConstraint(name string, expr *Expr, rel Relation, rhs float64) (*Constraint, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if _, dup := m.conNames[name]; dup {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCon, name)
	}
	if err := expr.check(m); err != nil {
		return nil, fmt.Errorf("constraint %s: %w", name, err)
	}

	c := &Constraint{name: name, expr: expr, rel: rel, rhs: rhs}
	m.cons = append(m.cons, c)
	m.conNames[name] = struct{}{}

	return c, nil
}

// AddLe declares expr <= rhs.
func (m *Model) AddLe(name string, expr *Expr, rhs float64) (*Constraint, error) {
	return m.AddConstraint(name, expr, LE, rhs)
}

// AddGe declares expr >= rhs.
func (m *Model) AddGe(name string, expr *Expr, rhs float64) (*Constraint, error) {
	return m.AddConstraint(name, expr, GE, rhs)
}

// AddEq declares expr = rhs.
func (m *Model) AddEq(name string, expr *Expr, rhs float64) (*Constraint, error) {
	return m.AddConstraint(name, expr, EQ, rhs)
}

// Minimize sets the objective to minimize expr, replacing any previous
// objective.
func (m *Model) Minimize(expr *Expr) error {
	return m.setObjective(Min, expr)
}

// Maximize sets the objective to maximize expr, replacing any previous
// objective.
func (m *Model) Maximize(expr *Expr) error {
	return m.setObjective(Max, expr)
}

func (m *Model) setObjective(sense Sense, expr *Expr) error {
	if err := expr.check(m); err != nil {
		return fmt.Errorf("objective: %w", err)
	}
	m.obj = &objective{sense: sense, expr: expr}

	return nil
}

// Objective returns the sense and expression of the declared objective.
// ok is false when no objective has been set.
func (m *Model) Objective() (sense Sense, expr *Expr, ok bool) {
	if m.obj == nil {
		return Min, nil, false
	}

	return m.obj.sense, m.obj.expr, true
}

// Validate checks that the model is complete enough to lower: at least one
// variable and an objective. Constraint expressions were validated when
// added.
func (m *Model) Validate() error {
	if len(m.vars) == 0 {
		return fmt.Errorf("model %s: %w", m.name, ErrEmptyExpr)
	}
	if m.obj == nil {
		return fmt.Errorf("model %s: %w", m.name, ErrNoObjective)
	}

	return nil
}
