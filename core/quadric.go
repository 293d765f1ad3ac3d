package core

import "github.com/katalvlaran/quadmesh/vector"

// ComputeVertexQuadric returns the Garland-Heckbert quadric Q = sum(K_p)
// for every triangle incident to n, where K_p is built from the plane
// equation (a,b,c,d) of that triangle: (a,b,c) its unit normal (computed
// with n as the triangle's basis vertex, matching ComputePolygons), and
// d = -(a,b,c).n. Returns ErrUnknownVertex if n is absent.
// Complexity: O(deg(n)^2), dominated by ComputePolygons.
func (g *Graph) ComputeVertexQuadric(n string) (*vector.Quadric, error) {
	v, ok := g.Vertex(n)
	if !ok {
		return nil, vertexErrorf("ComputeVertexQuadric", n, ErrUnknownVertex)
	}

	polys, err := g.ComputePolygons(n)
	if err != nil {
		return nil, err
	}

	q := vector.NewQuadric()
	origin := v.Coords()
	for _, tri := range polys {
		d := -tri.Normal.Dot(origin)
		q = q.Add(vector.NewPlaneQuadric(tri.Normal[0], tri.Normal[1], tri.Normal[2], d))
	}

	return q, nil
}
