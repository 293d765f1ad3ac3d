package core

import "errors"

// Sentinel errors for Graph invariant violations and edge-selection state.
// Callers should match these with errors.Is; the package wraps them with
// fmt.Errorf("%s: %w", ...) at call sites that have useful context (the
// offending name, say) to add.
var (
	// ErrDuplicateName indicates AddNode was called with a name already present.
	ErrDuplicateName = errors.New("core: duplicate vertex name")

	// ErrUnknownVertex indicates an operation referenced a name not present in the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNotAnEdge indicates CollapseEdge was called on a pair with no edge between them.
	ErrNotAnEdge = errors.New("core: not an edge")

	// ErrInvalidCoords indicates a coordinate slice/array did not have exactly 3 finite components.
	ErrInvalidCoords = errors.New("core: coordinates must be 3 finite values")
)

// NoEdge is the sentinel "end of reduction" result: DeterminePreferredCollapsibleEdge
// returns it (with ok=false) when the graph has no edges left, which callers
// must treat as normal termination, not as a failure (spec taxonomy: EmptyGraph).
var NoEdge = Edge{}
