package builder

import (
	"fmt"

	"github.com/katalvlaran/quadmesh/core"
)

// octahedronVertices holds the six vertices of a regular octahedron: the
// unit cross-polytope, one vertex per axis direction.
var octahedronVertices = [6][3]float64{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// octahedronAntipode maps each vertex index (0-based) to its antipodal
// index — the one pair of vertices that must NOT be connected, since a
// cross-polytope's edge set is "all pairs except antipodal pairs".
var octahedronAntipode = [6]int{1, 0, 3, 2, 5, 4}

// Octahedron returns a regular octahedron mesh: six vertices named
// "1".."6", connected by every pair except the three antipodal pairs,
// yielding the octahedron's eight triangular faces.
func Octahedron(opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	g := core.NewGraph()

	for i, v := range octahedronVertices {
		name := fmt.Sprintf("%d", i+1)
		coords := []float64{v[0] * cfg.scale, v[1] * cfg.scale, v[2] * cfg.scale}
		if err := g.AddNode(name, coords); err != nil {
			return nil, fmt.Errorf("builder.Octahedron: %w", err)
		}
	}

	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			if octahedronAntipode[i] == j {
				continue
			}
			a, b := fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", j+1)
			if err := g.AddEdge(a, b); err != nil {
				return nil, fmt.Errorf("builder.Octahedron: %w", err)
			}
		}
	}

	return g, nil
}
