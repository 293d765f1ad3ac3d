package builder

import (
	"fmt"

	"github.com/katalvlaran/quadmesh/core"
)

// QuadGrid returns a triangulated rows x cols planar grid in the z=0
// plane: vertices are named by sequential position in row-major order
// ("1".."rows*cols"), spaced one scaled unit apart, and each unit quad
// is split into two triangles along the (r,c)-(r+1,c+1) diagonal.
// Requires rows >= 2 and cols >= 2 (ErrInvalidDimensions otherwise).
func QuadGrid(rows, cols int, opts ...BuilderOption) (*core.Graph, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("builder.QuadGrid(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	cfg := newBuilderConfig(opts...)
	g := core.NewGraph()

	name := func(r, c int) string {
		return fmt.Sprintf("%d", r*cols+c+1)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coords := []float64{float64(c) * cfg.scale, float64(r) * cfg.scale, 0}
			if err := g.AddNode(name(r, c), coords); err != nil {
				return nil, fmt.Errorf("builder.QuadGrid: %w", err)
			}
		}
	}

	addEdge := func(a, b string) error {
		if err := g.AddEdge(a, b); err != nil {
			return fmt.Errorf("builder.QuadGrid: %w", err)
		}
		return nil
	}

	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			tl, tr := name(r, c), name(r, c+1)
			bl, br := name(r+1, c), name(r+1, c+1)

			if err := addEdge(tl, tr); err != nil {
				return nil, err
			}
			if err := addEdge(tl, bl); err != nil {
				return nil, err
			}
			if err := addEdge(tl, br); err != nil {
				return nil, err
			}
			if err := addEdge(tr, br); err != nil {
				return nil, err
			}
			if err := addEdge(bl, br); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
