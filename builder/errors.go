package builder

import "errors"

// ErrInvalidDimensions indicates QuadGrid was called with rows or cols < 2.
var ErrInvalidDimensions = errors.New("builder: rows and cols must each be >= 2")
