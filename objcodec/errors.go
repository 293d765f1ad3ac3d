package objcodec

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed or unsupported OBJ input.
var (
	// ErrUnsupportedFeature indicates an opcode this codec deliberately
	// does not implement: free-form geometry ("vp") and polylines ("l"),
	// and non-triangular faces.
	ErrUnsupportedFeature = errors.New("objcodec: unsupported OBJ feature")

	// ErrInvalidInput indicates a malformed line: a non-numeric
	// coordinate, a wrong coordinate count, a position missing from the
	// REDUCTION_VERTEX_KEYS remap, or malformed REDUCTION_* JSON payload.
	// A face naming an absent vertex without a remap surfaces
	// core.ErrUnknownVertex instead.
	ErrInvalidInput = errors.New("objcodec: invalid input")
)

// ParseError reports the line number and offending token alongside the
// wrapped sentinel, the way the teacher's matrix package attaches
// dimension context to its own errors.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("objcodec.Parse: line %d (%q): %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErrorf(line int, token string, err error) error {
	return &ParseError{Line: line, Token: token, Err: err}
}
