// Package demand supports the data-driven part of the course: a seeded
// synthetic demand history with observable features, a least-squares demand
// regression on those features, and helpers to feed the history into the
// newsvendor template. The generator reproduces the course dataset's shape:
// uniform features on [-1, 2), a nonlinear demand response, and Normal noise.
package demand
