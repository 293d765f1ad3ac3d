package core

import "fmt"

// CollapseEdge collapses the edge {l,r} into a single new vertex at their
// midpoint, inheriting the union of both endpoints' other neighbours.
// Requires l and r to be present and {l,r} to be a current edge (returns
// ErrUnknownVertex / ErrNotAnEdge otherwise).
//
// Steps (per this package's invariants I1-I5):
//  1. midpoint = (l.coords + r.coords) / 2
//  2. allocate name "m<++counter>"
//  3. insert the new vertex; for each neighbour of l, add edge(new, neighbour);
//     same for r, skipping the new vertex itself and the other endpoint
//  4. remove l, then r
//
// Any triangle that contained both l and r collapses into a degenerate
// pair of edges, absorbed by set semantics (no duplicate edges are
// possible in this representation).
// Complexity: O(deg(l) + deg(r)).
func (g *Graph) CollapseEdge(l, r string) (string, error) {
	if !g.HasVertex(l) {
		return "", vertexErrorf("CollapseEdge", l, ErrUnknownVertex)
	}
	if !g.HasVertex(r) {
		return "", vertexErrorf("CollapseEdge", r, ErrUnknownVertex)
	}
	if !g.HasEdge(l, r) {
		return "", fmt.Errorf("core.CollapseEdge(%q,%q): %w", l, r, ErrNotAnEdge)
	}

	lv, _ := g.Vertex(l)
	rv, _ := g.Vertex(r)
	midpoint := lv.Coords().Midpoint(rv.Coords())

	g.mCounter++
	newName := fmt.Sprintf("m%d", g.mCounter)

	lNbrs, _ := g.Neighbours(l)
	rNbrs, _ := g.Neighbours(r)

	// addNodeVec cannot collide: newName is freshly minted and monotonic (I5).
	_ = g.addNodeVec(newName, midpoint)

	for _, nbr := range lNbrs {
		if nbr == newName || nbr == r {
			continue
		}
		_ = g.AddEdge(newName, nbr)
	}
	for _, nbr := range rNbrs {
		if nbr == newName || nbr == l {
			continue
		}
		_ = g.AddEdge(newName, nbr)
	}

	_ = g.RemoveNode(l)
	_ = g.RemoveNode(r)

	return newName, nil
}

// SplitVertex is the exact inverse of CollapseEdge: it removes the vertex
// named name and reinserts two vertices a and b with their caller-supplied
// coordinates and neighbour sets. Does not require the original m-counter
// state — names are supplied by the caller (typically replayed from a
// reduction.Record). Requires name to be present and aName/bName to be
// absent.
// Complexity: O(len(aNeighbours) + len(bNeighbours)).
func (g *Graph) SplitVertex(name string, aName string, aCoords []float64, aNeighbours []string, bName string, bCoords []float64, bNeighbours []string) error {
	if !g.HasVertex(name) {
		return vertexErrorf("SplitVertex", name, ErrUnknownVertex)
	}
	if g.HasVertex(aName) {
		return vertexErrorf("SplitVertex", aName, ErrDuplicateName)
	}
	if g.HasVertex(bName) {
		return vertexErrorf("SplitVertex", bName, ErrDuplicateName)
	}

	if err := g.RemoveNode(name); err != nil {
		return err
	}
	if err := g.AddNode(aName, aCoords); err != nil {
		return err
	}
	if err := g.AddNode(bName, bCoords); err != nil {
		return err
	}

	for _, nbr := range aNeighbours {
		if err := g.AddEdge(aName, nbr); err != nil {
			return err
		}
	}
	for _, nbr := range bNeighbours {
		if err := g.AddEdge(bName, nbr); err != nil {
			return err
		}
	}

	return nil
}
