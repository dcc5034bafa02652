// Package geometry provides hypersphere primitives for the ball tree.
//
// A Ball is an immutable (centre, radius) pair with its hypervolume
// cached at construction. All operations are pure functions on float64
// vectors; the log-gamma and pi constant tables used for volume
// computation are process-wide and initialized once.
package geometry
