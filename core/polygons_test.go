package core_test

import (
	"testing"

	"github.com/katalvlaran/quadmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// P2: ComputeAllPolygons equals the union over v of ComputePolygons(v),
// each triangle discovered exactly once.
func TestComputeAllPolygons_MatchesUnion(t *testing.T) {
	g := tetrahedron(t)

	union := make(map[[3]string]core.Triangle)
	for _, name := range g.Order() {
		polys, err := g.ComputePolygons(name)
		require.NoError(t, err)
		for k, v := range polys {
			union[k] = v
		}
	}

	all := g.ComputeAllPolygons()
	assert.Equal(t, len(union), len(all))
	for k := range union {
		_, ok := all[k]
		assert.True(t, ok)
	}
}

func TestComputePolygons_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.ComputePolygons("missing")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestComputeVertexQuadric_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.ComputeVertexQuadric("missing")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}
