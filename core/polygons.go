package core

import (
	"github.com/katalvlaran/quadmesh/vector"
)

// Triangle is a discovered polygon: the name triple in discovery order
// (Key gives the canonically sorted form) plus a unit normal. The normal's
// orientation follows whichever iteration order produced it and is not guaranteed consistent across the mesh — callers
// must not assume consistent winding for shading purposes.
type Triangle struct {
	Vertices [3]string
	Normal   vector.Vec3
}

// Key returns the canonical (sorted) triple identifying this triangle,
// independent of discovery order.
func (t Triangle) Key() [3]string {
	return orderedTriple(t.Vertices[0], t.Vertices[1], t.Vertices[2])
}

// ComputePolygons returns the set of triangles incident to origin: for
// each pair (u,v) of origin's neighbours with u adjacent to v, emits the
// triple {origin,u,v}. Returns ErrUnknownVertex if origin is absent.
// Complexity: O(deg(origin)^2).
func (g *Graph) ComputePolygons(origin string) (map[[3]string]Triangle, error) {
	if !g.HasVertex(origin) {
		return nil, vertexErrorf("ComputePolygons", origin, ErrUnknownVertex)
	}

	nbrs, _ := g.Neighbours(origin)
	out := make(map[[3]string]Triangle)

	for i := 0; i < len(nbrs); i++ {
		u := nbrs[i]
		for j := i + 1; j < len(nbrs); j++ {
			v := nbrs[j]
			if !g.HasEdge(u, v) {
				continue
			}
			tri := g.buildTriangle(origin, u, v)
			out[tri.Key()] = tri
		}
	}

	return out, nil
}

// buildTriangle constructs a Triangle with its epsilon-guarded unit normal
// for the given (unordered) vertex names.
func (g *Graph) buildTriangle(a, b, c string) Triangle {
	av, _ := g.Vertex(a)
	bv, _ := g.Vertex(b)
	cv, _ := g.Vertex(c)

	_, normal := vector.PlaneQuadricFromTriangle(av.Coords(), bv.Coords(), cv.Coords())

	return Triangle{Vertices: [3]string{a, b, c}, Normal: normal}
}

// ComputeAllPolygons returns the union over all vertices of ComputePolygons,
// deduplicated by canonical key so every triangle is discovered exactly
// once (P2).
// Complexity: O(V * maxDeg^2).
func (g *Graph) ComputeAllPolygons() map[[3]string]Triangle {
	out := make(map[[3]string]Triangle)

	for _, name := range g.Order() {
		polys, err := g.ComputePolygons(name)
		if err != nil {
			continue // name vanished between Order() snapshot and lookup; skip.
		}
		for k, t := range polys {
			out[k] = t
		}
	}

	return out
}
