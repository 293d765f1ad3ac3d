package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quadmesh/vector"
	"github.com/stretchr/testify/assert"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := vector.NewVec3(1, 2, 3)
	b := vector.NewVec3(4, 5, 6)

	assert.Equal(t, vector.NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, vector.NewVec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, vector.NewVec3(2, 4, 6), a.Scale(2))
	assert.Equal(t, vector.NewVec3(2.5, 3.5, 4.5), a.Midpoint(b))
	assert.Equal(t, 32.0, a.Dot(b))
}

func TestVec3_Cross(t *testing.T) {
	x := vector.NewVec3(1, 0, 0)
	y := vector.NewVec3(0, 1, 0)
	assert.Equal(t, vector.NewVec3(0, 0, 1), x.Cross(y))
}

func TestVec3_Normalize(t *testing.T) {
	v := vector.NewVec3(3, 4, 0)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Norm(), 1e-6)
}

func TestVec3_Normalize_Degenerate(t *testing.T) {
	v := vector.NewVec3(0, 0, 0)
	n := v.Normalize()
	// Epsilon-guarded denominator keeps this finite rather than NaN.
	assert.True(t, n.Finite())
}

func TestVec3_Finite(t *testing.T) {
	assert.True(t, vector.NewVec3(1, 2, 3).Finite())
	assert.False(t, vector.NewVec3(1, math.NaN(), 3).Finite())
}
