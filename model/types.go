package model

import (
	"fmt"
	"math"
	"strings"
)

// Domain tags the admissible values of a decision variable.
type Domain int

const (
	// Continuous is a real variable with default bounds [0, +inf).
	Continuous Domain = iota

	// Free is a real variable with default bounds (-inf, +inf).
	Free

	// Integer is an integer variable with default bounds [0, +inf).
	Integer

	// Binary is a 0/1 variable. Explicit bounds are clamped to [0, 1].
	Binary
)

// String returns the domain tag used in diagnostics and LP export.
func (d Domain) String() string {
	switch d {
	case Continuous:
		return "continuous"
	case Free:
		return "free"
	case Integer:
		return "integer"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("domain(%d)", int(d))
	}
}

// IsInteger reports whether the domain is integer-valued.
func (d Domain) IsInteger() bool { return d == Integer || d == Binary }

// Sense is the optimization direction of the objective.
type Sense int

const (
	// Min minimizes the objective.
	Min Sense = iota

	// Max maximizes the objective.
	Max
)

// String returns "minimize" or "maximize".
func (s Sense) String() string {
	if s == Max {
		return "maximize"
	}

	return "minimize"
}

// Relation is the comparison of a constraint row against its right-hand side.
type Relation int

const (
	// LE is lhs <= rhs.
	LE Relation = iota

	// EQ is lhs = rhs.
	EQ

	// GE is lhs >= rhs.
	GE
)

// String returns the relational operator as written in LP format.
func (r Relation) String() string {
	switch r {
	case EQ:
		return "="
	case GE:
		return ">="
	default:
		return "<="
	}
}

// Var is a handle to one decision variable. Vars are created through a Model
// and are only valid in expressions on that model.
type Var struct {
	owner *Model
	col   int // 0-based column index in declaration order
	name  string
	dom   Domain
	lb    float64
	ub    float64
}

// Name returns the variable name, e.g. "ship(p1,d2)" for family members.
func (v *Var) Name() string { return v.name }

// Col returns the 0-based column index in declaration order.
func (v *Var) Col() int { return v.col }

// Domain returns the variable's domain tag.
func (v *Var) Domain() Domain { return v.dom }

// Bounds returns the lower and upper bound. Infinite bounds are ±math.Inf.
func (v *Var) Bounds() (lb, ub float64) { return v.lb, v.ub }

// VarOption adjusts a variable at declaration time.
type VarOption func(*Var)

// Lower sets the lower bound.
func Lower(lb float64) VarOption {
	return func(v *Var) { v.lb = lb }
}

// Upper sets the upper bound.
func Upper(ub float64) VarOption {
	return func(v *Var) { v.ub = ub }
}

// Bounds sets both bounds.
func Bounds(lb, ub float64) VarOption {
	return func(v *Var) { v.lb, v.ub = lb, ub }
}

// defaultBounds returns the bound pair implied by a domain tag.
func defaultBounds(d Domain) (lb, ub float64) {
	switch d {
	case Free:
		return math.Inf(-1), math.Inf(1)
	case Binary:
		return 0, 1
	default:
		return 0, math.Inf(1)
	}
}

// keySep joins index keys internally. A control character keeps user keys
// containing commas or parentheses unambiguous.
const keySep = "\x1f"

// VarSet is a family of variables indexed by tuples of string keys, one
// variable per element of the cross product of the declared index sets.
type VarSet struct {
	name string
	dims int
	vars map[string]*Var
	list []*Var
}

// Name returns the family name.
func (vs *VarSet) Name() string { return vs.name }

// Dims returns the number of index positions.
func (vs *VarSet) Dims() int { return vs.dims }

// Len returns the number of variables in the family.
func (vs *VarSet) Len() int { return len(vs.list) }

// Vars returns the family members in declaration order. The returned slice
// is shared; callers must not modify it.
func (vs *VarSet) Vars() []*Var { return vs.list }

// At returns the variable for the given key tuple.
func (vs *VarSet) At(keys ...string) (*Var, error) {
	if len(keys) != vs.dims {
		return nil, fmt.Errorf("%w: %s expects %d keys, got %d",
			ErrUnknownKey, vs.name, vs.dims, len(keys))
	}
	v, ok := vs.vars[strings.Join(keys, keySep)]
	if !ok {
		return nil, fmt.Errorf("%w: %s(%s)", ErrUnknownKey, vs.name, strings.Join(keys, ","))
	}

	return v, nil
}

// MustAt is At for key tuples known to exist, typically the same slices the
// family was declared over. It panics on an unknown tuple.
func (vs *VarSet) MustAt(keys ...string) *Var {
	v, err := vs.At(keys...)
	if err != nil {
		panic(err)
	}

	return v
}

// memberName renders the LP-safe name of one family member,
// e.g. "ship(p1,d2)".
func memberName(family string, keys []string) string {
	return family + "(" + strings.Join(keys, ",") + ")"
}
