package matrix_test

import (
	"testing"

	"github.com/katalvlaran/quadmesh/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(n int) *matrix.Dense {
	d, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		d.MustSet(i, i, 1.0)
	}
	return d
}

func TestAdd(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	a.MustSet(0, 0, 1)
	a.MustSet(1, 1, 2)
	b := identity(2)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	v, _ := sum.At(0, 0)
	assert.Equal(t, 2.0, v)
	v, _ = sum.At(1, 1)
	assert.Equal(t, 3.0, v)
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(3, 3)
	_, err := matrix.Add(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	a.MustSet(0, 1, 5)
	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	v, _ := tr.At(1, 0)
	assert.Equal(t, 5.0, v)
}

func TestInverse_Identity(t *testing.T) {
	inv, err := matrix.Inverse(identity(4))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, _ := inv.At(i, j)
			if i == j {
				assert.InDelta(t, 1.0, v, 1e-9)
			} else {
				assert.InDelta(t, 0.0, v, 1e-9)
			}
		}
	}
}

func TestInverse_Singular(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	_, err := matrix.Inverse(a)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_RoundTrip(t *testing.T) {
	a, _ := matrix.NewDense(3, 3)
	a.MustSet(0, 0, 4)
	a.MustSet(0, 1, 7)
	a.MustSet(1, 0, 2)
	a.MustSet(1, 1, 6)
	a.MustSet(2, 2, 1)

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	x := []float64{1, 0, 0}
	prod, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	back, err := matrix.MatVec(inv, prod)
	require.NoError(t, err)
	for i := range x {
		assert.InDelta(t, x[i], back[i], 1e-9)
	}
}

func TestQuadraticForm(t *testing.T) {
	a := identity(3)
	v, err := matrix.QuadraticForm(a, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1.0+4.0+9.0, v)
}

func TestDeterminant_Identity(t *testing.T) {
	d, err := matrix.Determinant(identity(4))
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}
