// Package problems holds the classical optimization templates the course
// builds throughout its notebooks: a product-mix LP, the 0/1 knapsack,
// capacitated facility location, two-echelon supply-network design, and the
// newsvendor in its closed-form, empirical, and scenario-LP variants.
//
// Each template is a typed instance struct whose Model method lowers the
// instance into a model.Model and returns the variable handles needed to
// read the solution back. Instance structs carry yaml tags so the instance
// package can decode course data files into them directly.
package problems
