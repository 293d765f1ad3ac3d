package matrix

import "fmt"

// Matrix is the minimal two-dimensional mutable array of float64 values
// this package operates on. Dense is the only implementation, but the
// interface keeps call sites (vector.Quadric in particular) decoupled from
// storage layout.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (row, col), or ErrOutOfRange.
	// Complexity: O(1).
	At(row, col int) (float64, error)

	// Set assigns v at (row, col), or returns ErrOutOfRange.
	// Complexity: O(1).
	Set(row, col int, v float64) error

	// Clone returns a deep, independent copy. Complexity: O(rows*cols).
	Clone() Matrix
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a rows x cols Dense matrix initialized to zero.
// Returns ErrInvalidDimensions if rows <= 0 or cols <= 0.
// Complexity: O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

func (m *Dense) Rows() int { return m.r }
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.index(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// MustSet assigns v at (row, col), panicking on out-of-range indices. Used
// internally for construction loops where the bounds are known by
// inspection (e.g. filling a freshly allocated n x n matrix).
func (m *Dense) MustSet(row, col int, v float64) {
	if err := m.Set(row, col, v); err != nil {
		panic(err)
	}
}

// Clone returns an independent copy of m.
func (m *Dense) Clone() Matrix {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// SetSymmetric assigns v at both (row, col) and (col, row).
func (m *Dense) SetSymmetric(row, col int, v float64) {
	m.MustSet(row, col, v)
	if row != col {
		m.MustSet(col, row, v)
	}
}
