package matrix

import "errors"

// Sentinel errors for the matrix package. Algorithms return these via
// errors.Is; panics are reserved for programmer errors (nil receivers on
// private helpers), never for user-triggered conditions.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a zero pivot is encountered during
	// Gauss-Jordan inversion. The package uses no pivoting scheme, by policy,
	// so this is reported rather than worked around.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates a nil Matrix was used where one was required.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
