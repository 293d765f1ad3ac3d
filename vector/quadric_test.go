package vector_test

import (
	"testing"

	"github.com/katalvlaran/quadmesh/vector"
	"github.com/stretchr/testify/assert"
)

func TestQuadric_Symmetric(t *testing.T) {
	q, _ := vector.PlaneQuadricFromTriangle(
		vector.NewVec3(0, 0, 0),
		vector.NewVec3(1, 0, 0),
		vector.NewVec3(0, 1, 0),
	)
	m := q.Dense()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			vij, _ := m.At(i, j)
			vji, _ := m.At(j, i)
			assert.Equal(t, vij, vji)
		}
	}
}

func TestQuadric_Add(t *testing.T) {
	q1, _ := vector.PlaneQuadricFromTriangle(
		vector.NewVec3(0, 0, 0), vector.NewVec3(1, 0, 0), vector.NewVec3(0, 1, 0))
	q2, _ := vector.PlaneQuadricFromTriangle(
		vector.NewVec3(0, 0, 0), vector.NewVec3(0, 1, 0), vector.NewVec3(0, 0, 1))

	sum := q1.Add(q2)
	errAtOrigin := sum.Error(vector.NewVec3(0, 0, 0))
	assert.InDelta(t, 0.0, errAtOrigin, 1e-9)
}

func TestQuadric_ErrorZeroOnPlane(t *testing.T) {
	q, _ := vector.PlaneQuadricFromTriangle(
		vector.NewVec3(0, 0, 0), vector.NewVec3(1, 0, 0), vector.NewVec3(0, 1, 0))
	// Any point on the z=0 plane has zero error against this single-plane quadric.
	assert.InDelta(t, 0.0, q.Error(vector.NewVec3(2, 3, 0)), 1e-9)
	assert.Greater(t, q.Error(vector.NewVec3(0, 0, 1)), 0.0)
}

func TestQuadric_OptimalPosition_FallsBackWhenSingular(t *testing.T) {
	// A single-plane quadric's system is singular (rank-1 among the first
	// three rows), so OptimalPosition must fall back to the midpoint.
	q, _ := vector.PlaneQuadricFromTriangle(
		vector.NewVec3(0, 0, 0), vector.NewVec3(1, 0, 0), vector.NewVec3(0, 1, 0))
	mid := vector.NewVec3(0.5, 0.5, 0.0)
	assert.Equal(t, mid, q.OptimalPosition(mid))
}
