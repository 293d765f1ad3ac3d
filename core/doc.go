// Package core implements VertexGraph: a mutable, undirected graph of named
// vertices carrying 3D coordinates, with edge collapse and its exact
// inverse (vertex split), triangle discovery, per-vertex quadric error
// computation, and preferred-edge selection for progressive mesh
// simplification.
//
// Vertices are identified by name, not by pointer: the graph is a mapping
// from name to (coordinates, neighbour-name-set) plus an ordered slice of
// names for stable insertion-order enumeration. This sidesteps cyclic
// ownership entirely — neighbours reference each other symbolically.
//
// Invariants maintained by every exported mutator:
//
//	I1 Symmetric adjacency: v in N(u) iff u in N(v).
//	I2 No self-loops: v not in N(v).
//	I3 Every name in an adjacency set names an existing vertex.
//	I4 Insertion order is preserved and observable via Graph.Order.
//	I5 The m-counter strictly increases; collapse names are never reused.
//
// Two internal locks (muVert, muEdgeAdj) guard the vertex catalog and the
// adjacency/edge topology respectively, matching this package's ambient
// locking idiom even though callers are expected to drive a single Graph
// from one goroutine at a time (see the module's concurrency notes).
package core
