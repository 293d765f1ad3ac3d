package core

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/quadmesh/vector"
)

// Vertex is a named point in 3-space. Coords is unexported; callers read it
// through the Coords accessor so the zero value is never mistaken for a
// mutable field on a value the graph owns.
type Vertex struct {
	name   string
	coords vector.Vec3
}

// Name returns the vertex's stable identifier.
func (v *Vertex) Name() string { return v.name }

// Coords returns the vertex's 3D position.
func (v *Vertex) Coords() vector.Vec3 { return v.coords }

// Edge is an unordered pair of distinct vertex names.
type Edge struct {
	A, B string
}

// Graph is the mutable, undirected vertex graph described in this
// package's doc comment. The zero value is not usable; construct with
// NewGraph.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and order
	muEdgeAdj sync.RWMutex // guards neighbours

	vertices   map[string]*Vertex
	order      []string // insertion order, observable via Order()
	neighbours map[string]map[string]struct{}

	mCounter int // strictly increasing, scoped to this graph (I5)
}

// NewGraph returns an empty Graph ready for AddNode/AddEdge calls.
func NewGraph() *Graph {
	return &Graph{
		vertices:   make(map[string]*Vertex),
		neighbours: make(map[string]map[string]struct{}),
	}
}

// Order returns the current vertex names in insertion order (I4). The
// returned slice is a fresh copy; callers may not mutate graph state
// through it.
func (g *Graph) Order() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the current number of vertices.
func (g *Graph) Len() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.order)
}

// HasVertex reports whether name names a current vertex.
func (g *Graph) HasVertex(name string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[name]
	return ok
}

// Vertex returns the named vertex, or (nil, false) if absent.
func (g *Graph) Vertex(name string) (*Vertex, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[name]
	return v, ok
}

func vertexErrorf(method, name string, err error) error {
	return fmt.Errorf("core.%s(%q): %w", method, name, err)
}
