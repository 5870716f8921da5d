// Package solve defines the solver-facing surface of a model: the Solver
// interface, solve options, and the Solution returned by a backend with its
// termination status and per-variable values.
//
// Backends live in subpackages; solve/glpk delegates to the GNU Linear
// Programming Kit through cgo bindings. No solving happens in this package.
package solve
