// Package matrix provides a small set of dense linear-algebra kernels used
// by vector.Quadric: element-wise Add, scalar Scale, matrix-vector
// multiplication, Transpose, and Inverse via Gauss-Jordan elimination.
//
// This is a generalized, trimmed descendant of a larger adjacency/incidence
// matrix package: it keeps the Matrix interface, the Dense implementation,
// and the handful of kernels a 4x4 quadric system needs, and drops the
// graph-adjacency-specific machinery (no core.Graph dependency here).
//
// Determinism: Inverse uses a fixed pivot order (no partial pivoting) so
// behavior is reproducible across runs; a zero pivot is reported as
// ErrSingular rather than silently reordered around.
package matrix
