package problems

import "errors"

// Sentinel errors shared by the problem templates.
var (
	// ErrEmptyInstance indicates a template with a missing required section,
	// such as a knapsack without items.
	ErrEmptyInstance = errors.New("problems: empty instance section")

	// ErrUnknownName indicates instance data referencing a name that was
	// never declared, such as a usage entry for an unlisted product.
	ErrUnknownName = errors.New("problems: unknown name in instance data")

	// ErrMissingCost indicates an arc without a cost entry.
	ErrMissingCost = errors.New("problems: missing cost entry")

	// ErrBadRatio indicates newsvendor costs whose critical ratio falls
	// outside (0, 1); both underage and overage must be positive.
	ErrBadRatio = errors.New("problems: critical ratio outside (0,1)")

	// ErrNoHistory indicates an empty demand history.
	ErrNoHistory = errors.New("problems: empty demand history")
)
