package matrix

import "fmt"

func opErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}

// Add returns a new Dense containing the element-wise sum of a and b.
// Both operands must share identical shapes.
// Complexity: O(rows*cols).
func Add(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf("Add", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return nil, opErrorf("Add", ErrDimensionMismatch)
	}
	out, _ := NewDense(a.r, a.c)
	for i := range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}
	return out, nil
}

// Scale returns a new Dense with every entry of a multiplied by s.
// Complexity: O(rows*cols).
func Scale(a *Dense, s float64) (*Dense, error) {
	if a == nil {
		return nil, opErrorf("Scale", ErrNilMatrix)
	}
	out, _ := NewDense(a.r, a.c)
	for i := range a.data {
		out.data[i] = a.data[i] * s
	}
	return out, nil
}

// Transpose returns a new Dense with a's rows and columns swapped.
// Complexity: O(rows*cols).
func Transpose(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, opErrorf("Transpose", ErrNilMatrix)
	}
	out, _ := NewDense(a.c, a.r)
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			v, _ := a.At(i, j)
			_ = out.Set(j, i, v)
		}
	}
	return out, nil
}

// MatVec returns a*x for a an r x c matrix and x a length-c column vector.
// Complexity: O(rows*cols).
func MatVec(a *Dense, x []float64) ([]float64, error) {
	if a == nil {
		return nil, opErrorf("MatVec", ErrNilMatrix)
	}
	if len(x) != a.c {
		return nil, opErrorf("MatVec", ErrDimensionMismatch)
	}
	out := make([]float64, a.r)
	for i := 0; i < a.r; i++ {
		var sum float64
		for j := 0; j < a.c; j++ {
			v, _ := a.At(i, j)
			sum += v * x[j]
		}
		out[i] = sum
	}
	return out, nil
}

// QuadraticForm returns x^T a x for a a square n x n matrix and x a length-n vector.
// Complexity: O(n^2).
func QuadraticForm(a *Dense, x []float64) (float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return 0, opErrorf("QuadraticForm", err)
	}
	var sum float64
	for i, v := range ax {
		sum += x[i] * v
	}
	return sum, nil
}

// Inverse returns the inverse of square matrix a via Gauss-Jordan
// elimination with a fixed (non-pivoting) elimination order, augmenting a
// with the identity and reducing a to the identity in place on a working
// copy. Returns ErrNonSquare if a is not square, ErrSingular if a zero
// pivot is encountered — by policy this package never reorders rows to
// avoid one, so results are deterministic across calls.
// Complexity: O(n^3).
func Inverse(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, opErrorf("Inverse", ErrNilMatrix)
	}
	n := a.r
	if n != a.c {
		return nil, opErrorf("Inverse", ErrNonSquare)
	}

	// work holds [A | I] as an n x 2n scratch matrix.
	work, _ := NewDense(n, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := a.At(i, j)
			work.MustSet(i, j, v)
		}
		work.MustSet(i, n+i, 1.0)
	}

	for col := 0; col < n; col++ {
		pivot, _ := work.At(col, col)
		if pivot == 0 {
			return nil, opErrorf("Inverse", ErrSingular)
		}
		for j := 0; j < 2*n; j++ {
			v, _ := work.At(col, j)
			work.MustSet(col, j, v/pivot)
		}
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor, _ := work.At(row, col)
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				vr, _ := work.At(row, j)
				vc, _ := work.At(col, j)
				work.MustSet(row, j, vr-factor*vc)
			}
		}
	}

	out, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := work.At(i, n+j)
			out.MustSet(i, j, v)
		}
	}
	return out, nil
}

// Determinant returns the determinant of square matrix a via cofactor
// expansion along the first row. Intended for the small (4x4) matrices
// this package is sized for; not a general-purpose O(n!) algorithm choice
// for larger n.
// Complexity: O(n!) in n, acceptable for the fixed n=4 quadric system.
func Determinant(a *Dense) (float64, error) {
	if a == nil {
		return 0, opErrorf("Determinant", ErrNilMatrix)
	}
	if a.r != a.c {
		return 0, opErrorf("Determinant", ErrNonSquare)
	}
	return determinantRec(a), nil
}

func determinantRec(a *Dense) float64 {
	n := a.r
	if n == 1 {
		v, _ := a.At(0, 0)
		return v
	}
	if n == 2 {
		v00, _ := a.At(0, 0)
		v01, _ := a.At(0, 1)
		v10, _ := a.At(1, 0)
		v11, _ := a.At(1, 1)
		return v00*v11 - v01*v10
	}

	var det float64
	sign := 1.0
	for col := 0; col < n; col++ {
		minor, _ := NewDense(n-1, n-1)
		for i := 1; i < n; i++ {
			mc := 0
			for j := 0; j < n; j++ {
				if j == col {
					continue
				}
				v, _ := a.At(i, j)
				minor.MustSet(i-1, mc, v)
				mc++
			}
		}
		v0col, _ := a.At(0, col)
		det += sign * v0col * determinantRec(minor)
		sign = -sign
	}
	return det
}
