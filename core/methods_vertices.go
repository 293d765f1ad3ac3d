package core

import "github.com/katalvlaran/quadmesh/vector"

// AddNode inserts a new vertex named name at the given coordinates.
// Requires name to be absent (returns ErrDuplicateName otherwise) and
// coords to hold exactly 3 finite values (returns ErrInvalidCoords
// otherwise). The new vertex starts with an empty neighbour set and is
// appended to the insertion order (I4).
// Complexity: O(1).
func (g *Graph) AddNode(name string, coords []float64) error {
	if len(coords) != 3 {
		return vertexErrorf("AddNode", name, ErrInvalidCoords)
	}
	v := vector.NewVec3(coords[0], coords[1], coords[2])
	if !v.Finite() {
		return vertexErrorf("AddNode", name, ErrInvalidCoords)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[name]; exists {
		return vertexErrorf("AddNode", name, ErrDuplicateName)
	}

	g.vertices[name] = &Vertex{name: name, coords: v}
	g.order = append(g.order, name)

	g.muEdgeAdj.Lock()
	g.neighbours[name] = make(map[string]struct{})
	g.muEdgeAdj.Unlock()

	return nil
}

// addNodeVec is the internal counterpart of AddNode taking a vector.Vec3
// directly, used by CollapseEdge where the coordinate is derived from
// already validated ones (a midpoint of two finite points is finite).
func (g *Graph) addNodeVec(name string, v vector.Vec3) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[name]; exists {
		return vertexErrorf("AddNode", name, ErrDuplicateName)
	}

	g.vertices[name] = &Vertex{name: name, coords: v}
	g.order = append(g.order, name)

	g.muEdgeAdj.Lock()
	g.neighbours[name] = make(map[string]struct{})
	g.muEdgeAdj.Unlock()

	return nil
}

// RemoveNode detaches name from every neighbour symmetrically and drops it
// from the vertex catalog and insertion order. Requires name to be
// present; a second call on the same name returns ErrUnknownVertex
// (removal is not idempotent, matching the spec's documented behavior).
// Complexity: O(deg(name)).
func (g *Graph) RemoveNode(name string) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[name]; !exists {
		return vertexErrorf("RemoveNode", name, ErrUnknownVertex)
	}

	for nbr := range g.neighbours[name] {
		delete(g.neighbours[nbr], name)
	}
	delete(g.neighbours, name)
	delete(g.vertices, name)

	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}
