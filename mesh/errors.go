package mesh

import "errors"

// Sentinel errors for Model lifecycle violations.
var (
	// ErrAlreadyReduced indicates Reduce was called on a Model whose log is already non-empty.
	ErrAlreadyReduced = errors.New("mesh: model already reduced")

	// ErrNotReduced indicates Reproduce was called on a Model with an empty log.
	ErrNotReduced = errors.New("mesh: model not reduced")

	// ErrInvalidArgument indicates Reduce was called with neither a max-iterations
	// cap nor a stop predicate.
	ErrInvalidArgument = errors.New("mesh: neither max iterations nor stop predicate supplied")
)
