package model

import "errors"

// Sentinel errors for model construction. Callers match with errors.Is.
var (
	// ErrEmptyName indicates an empty or whitespace-containing name.
	ErrEmptyName = errors.New("model: empty or invalid name")

	// ErrDuplicateVar indicates a variable name already declared on the model.
	ErrDuplicateVar = errors.New("model: duplicate variable name")

	// ErrDuplicateCon indicates a constraint name already declared on the model.
	ErrDuplicateCon = errors.New("model: duplicate constraint name")

	// ErrEmptyIndexSet indicates a variable family declared over an empty index set.
	ErrEmptyIndexSet = errors.New("model: empty index set")

	// ErrUnknownKey indicates a VarSet lookup with an undeclared key tuple.
	ErrUnknownKey = errors.New("model: unknown index key")

	// ErrNilVar indicates an expression term with a nil variable.
	ErrNilVar = errors.New("model: nil variable in expression")

	// ErrForeignVar indicates an expression referencing a variable owned by
	// a different model.
	ErrForeignVar = errors.New("model: variable belongs to another model")

	// ErrBadBounds indicates a lower bound above the upper bound.
	ErrBadBounds = errors.New("model: lower bound exceeds upper bound")

	// ErrEmptyExpr indicates a constraint or objective without variable terms.
	ErrEmptyExpr = errors.New("model: expression has no variable terms")

	// ErrNoObjective indicates the model has no objective declared.
	ErrNoObjective = errors.New("model: no objective declared")

	// ErrDimension indicates mismatched lengths in a paired declaration,
	// such as Dot with unequal coefficient and variable slices.
	ErrDimension = errors.New("model: dimension mismatch")
)
