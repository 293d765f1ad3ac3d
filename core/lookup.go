package core

import "github.com/katalvlaran/quadmesh/vector"

// FindByCoords returns the name of the vertex whose coordinates exactly
// equal coords, or ("", false) if none match. A linear scan over the
// current vertex set, matching the original implementation this package
// is grounded on (a coordinate-to-name reverse lookup has no index to
// maintain incrementally, since any vertex's coordinates are fixed at
// AddNode/CollapseEdge time and never mutated in place).
// Complexity: O(V).
func (g *Graph) FindByCoords(coords vector.Vec3) (string, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	for _, name := range g.order {
		if g.vertices[name].coords == coords {
			return name, true
		}
	}
	return "", false
}
