package builder

import (
	"fmt"

	"github.com/katalvlaran/quadmesh/core"
)

// tetrahedronVertices holds the four vertices of a regular tetrahedron
// inscribed in a cube of side 2, centered at the origin — the
// alternating-corner construction, so every pair of vertices is
// equidistant.
var tetrahedronVertices = [4][3]float64{
	{1, 1, 1},
	{1, -1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
}

// Tetrahedron returns a complete K4 mesh: four vertices named "1".."4",
// every pair connected, yielding the tetrahedron's four triangular
// faces. Vertex IDs follow this module's sequential-integer naming
// convention for originally-parsed vertices (core/types.go's Name
// scheme), so fixtures built here look identical to an OBJ-parsed mesh
// to the rest of the module.
func Tetrahedron(opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	g := core.NewGraph()

	for i, v := range tetrahedronVertices {
		name := fmt.Sprintf("%d", i+1)
		coords := []float64{v[0] * cfg.scale, v[1] * cfg.scale, v[2] * cfg.scale}
		if err := g.AddNode(name, coords); err != nil {
			return nil, fmt.Errorf("builder.Tetrahedron: %w", err)
		}
	}

	for i := 1; i <= 4; i++ {
		for j := i + 1; j <= 4; j++ {
			a, b := fmt.Sprintf("%d", i), fmt.Sprintf("%d", j)
			if err := g.AddEdge(a, b); err != nil {
				return nil, fmt.Errorf("builder.Tetrahedron: %w", err)
			}
		}
	}

	return g, nil
}
