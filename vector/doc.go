// Package vector provides the 3D vector arithmetic and quadric-error-metric
// primitives shared by the mesh-reduction core.
//
// Vec3 is a plain [3]float64 with the handful of operations QEM needs: Add,
// Sub, Scale, Dot, Cross, Norm and an epsilon-guarded Normalize. Quadric
// wraps a 4x4 symmetric matrix.Dense and implements the Garland-Heckbert
// fundamental error quadric: construction from a plane equation, summation
// across incident triangles, scalar evaluation at a candidate position, and
// the (optional, disabled-by-default) optimal-position solve via matrix
// inversion.
//
// A single epsilon (Epsilon = 1e-7) is shared across normal normalisation,
// the optimal-position determinant threshold, and quadric denominators, per
// the numerical policy this package follows.
package vector

// Epsilon is the shared numerical-policy constant: it guards the normal
// normalisation denominator, the optimal-position determinant threshold,
// and any other near-zero denominator this package encounters.
const Epsilon = 1e-7
