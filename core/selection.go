package core

import (
	"sort"

	"github.com/katalvlaran/quadmesh/vector"
)

// EdgeSelectionOption configures DeterminePreferredCollapsibleEdge,
// following this package's functional-option idiom.
type EdgeSelectionOption func(*edgeSelectionConfig)

type edgeSelectionConfig struct {
	useOptimalPosition bool
}

// WithOptimalPosition enables the QEM optimal-position branch: instead of
// always evaluating the error at the midpoint, solve the 4x4 system for
// the position that minimises the combined quadric (falling back to the
// midpoint when that system is near-singular). Disabled by default.
func WithOptimalPosition(enabled bool) EdgeSelectionOption {
	return func(cfg *edgeSelectionConfig) { cfg.useOptimalPosition = enabled }
}

func newEdgeSelectionConfig(opts ...EdgeSelectionOption) *edgeSelectionConfig {
	cfg := &edgeSelectionConfig{useOptimalPosition: false}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// DeterminePreferredCollapsibleEdge returns the edge with minimum quadric
// error among all current edges, or (NoEdge, false) when the graph
// contains no edges (the spec's "EmptyGraph" sentinel — normal
// termination, not a failure).
//
// Procedure:
//  1. Enumerate unique edges in canonical (lexicographic) order.
//  2. Compute each vertex's quadric once.
//  3. For each edge (a,b), candidate = midpoint(a,b), or the optimal
//     position when WithOptimalPosition(true) was supplied.
//  4. error = candidate^T * (Q(a)+Q(b)) * candidate.
//  5. Ties are broken by encounter order — the canonical ordering from
//     step 1 makes this deterministic (P7).
//
// Complexity: O(E * maxDeg^2) dominated by per-vertex quadric computation.
func (g *Graph) DeterminePreferredCollapsibleEdge(opts ...EdgeSelectionOption) (Edge, bool) {
	cfg := newEdgeSelectionConfig(opts...)

	edges := g.uniqueEdgesSorted()
	if len(edges) == 0 {
		return NoEdge, false
	}

	quadrics := make(map[string]*quadricResult, g.Len())
	for _, name := range g.Order() {
		q, err := g.ComputeVertexQuadric(name)
		if err != nil {
			continue
		}
		v, _ := g.Vertex(name)
		quadrics[name] = &quadricResult{q: q, coords: v.Coords()}
	}

	var best Edge
	bestSet := false
	var bestError float64

	for _, e := range edges {
		qa, okA := quadrics[e.A]
		qb, okB := quadrics[e.B]
		if !okA || !okB {
			continue
		}

		combined := qa.q.Add(qb.q)
		midpoint := qa.coords.Midpoint(qb.coords)
		candidate := midpoint
		if cfg.useOptimalPosition {
			candidate = combined.OptimalPosition(midpoint)
		}
		errVal := combined.Error(candidate)

		if !bestSet || errVal < bestError {
			best = e
			bestError = errVal
			bestSet = true
		}
	}

	if !bestSet {
		return NoEdge, false
	}
	return best, true
}

type quadricResult struct {
	q      *vector.Quadric
	coords vector.Vec3
}

// uniqueEdgesSorted returns every current edge exactly once, in ascending
// lexicographic order on (A,B).
func (g *Graph) uniqueEdgesSorted() []Edge {
	seen := make(map[[2]string]struct{})
	var out []Edge

	for _, name := range g.Order() {
		nbrs, err := g.Neighbours(name)
		if err != nil {
			continue
		}
		for _, nbr := range nbrs {
			a, b := orderedPair(name, nbr)
			key := [2]string{a, b}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Edge{A: a, B: b})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}
