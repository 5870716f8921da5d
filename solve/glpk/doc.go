// Package glpk solves models with the GNU Linear Programming Kit through
// the lukpank/go-glpk cgo bindings. Pure LPs run the simplex method; models
// with integer or binary variables additionally run GLPK's branch-and-cut
// on top of the solved relaxation. Requires libglpk at build and run time.
package glpk
