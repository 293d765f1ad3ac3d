package vector

import (
	"fmt"

	"github.com/katalvlaran/quadmesh/matrix"
)

// Quadric is the Garland-Heckbert fundamental error quadric, a 4x4
// symmetric matrix Q = sum(K_p) over incident planes p = (a,b,c,d), where
// K_p = p^T p. Backed by matrix.Dense so the optimal-position solve can
// reuse the package's Gauss-Jordan Inverse instead of a hand-rolled 4x4
// inverse.
type Quadric struct {
	m *matrix.Dense
}

// NewQuadric returns the zero quadric (all entries zero).
func NewQuadric() *Quadric {
	d, _ := matrix.NewDense(4, 4)
	return &Quadric{m: d}
}

// NewPlaneQuadric builds K_p = p^T p for the plane equation ax+by+cz+d=0,
// where (a,b,c) is expected to already be a unit normal.
func NewPlaneQuadric(a, b, c, d float64) *Quadric {
	p := [4]float64{a, b, c, d}
	q := NewQuadric()
	for i := 0; i < 4; i++ {
		for j := i; j < 4; j++ {
			q.m.SetSymmetric(i, j, p[i]*p[j])
		}
	}
	return q
}

// PlaneQuadricFromTriangle builds the plane quadric for the triangle with
// vertices a, b, c: normal = normalize(cross(b-a, c-a)), d = -dot(normal,a).
// Uses Epsilon to guard the normal's normalization denominator, so a
// degenerate (zero-area) triangle yields a defined, if not meaningful,
// quadric rather than a NaN.
func PlaneQuadricFromTriangle(a, b, c Vec3) (*Quadric, Vec3) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	normal := ab.Cross(ac).Normalize()
	d := -normal.Dot(a)
	return NewPlaneQuadric(normal[0], normal[1], normal[2], d), normal
}

// Add returns the sum of q and other as a new Quadric.
func (q *Quadric) Add(other *Quadric) *Quadric {
	sum, err := matrix.Add(q.m, other.m)
	if err != nil {
		// Both operands are always 4x4 by construction; a mismatch here
		// indicates a programmer error, not a runtime condition to recover from.
		panic(fmt.Errorf("vector: Quadric.Add: %w", err))
	}
	return &Quadric{m: sum}
}

// Error evaluates v^T Q v for v in homogeneous form (v[0],v[1],v[2],1).
func (q *Quadric) Error(v Vec3) float64 {
	h := []float64{v[0], v[1], v[2], 1.0}
	val, err := matrix.QuadraticForm(q.m, h)
	if err != nil {
		panic(fmt.Errorf("vector: Quadric.Error: %w", err))
	}
	return val
}

// Dense exposes the backing 4x4 matrix, read-only by convention (callers
// should treat the returned value as immutable; it is the live matrix, not
// a clone, for callers that need to batch several reads cheaply).
func (q *Quadric) Dense() *matrix.Dense {
	return q.m
}

// OptimalPosition solves for the position that minimises this quadric's
// error: replace the matrix's last row with (0,0,0,1), invert it, and read
// off the first three components of Inverse * (0,0,0,1)^T. Falls back to
// the supplied midpoint whenever |det| <= Epsilon. Edge selection calls it
// only when enabled (see core.WithOptimalPosition, off by default).
func (q *Quadric) OptimalPosition(midpoint Vec3) Vec3 {
	system, _ := matrix.NewDense(4, 4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			v, _ := q.m.At(i, j)
			system.MustSet(i, j, v)
		}
	}
	system.MustSet(3, 0, 0.0)
	system.MustSet(3, 1, 0.0)
	system.MustSet(3, 2, 0.0)
	system.MustSet(3, 3, 1.0)

	det, err := matrix.Determinant(system)
	if err != nil || absf(det) <= Epsilon {
		return midpoint
	}

	inv, err := matrix.Inverse(system)
	if err != nil {
		return midpoint
	}
	sol, err := matrix.MatVec(inv, []float64{0, 0, 0, 1})
	if err != nil {
		return midpoint
	}
	return Vec3{sol[0], sol[1], sol[2]}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
