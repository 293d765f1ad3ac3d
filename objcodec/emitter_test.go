package objcodec_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/quadmesh/builder"
	"github.com/katalvlaran/quadmesh/objcodec"
	"github.com/katalvlaran/quadmesh/reduction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S6: writing then re-parsing a mesh preserves vertex count, face count,
// and preserved headers.
func TestWrite_Parse_RoundTrip(t *testing.T) {
	g, err := builder.Tetrahedron()
	require.NoError(t, err)

	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { require.NoError(t, os.Chdir(cwd)) }()

	headers := []string{"o Tetra"}
	name, err := objcodec.Write("tetra", g, headers, reduction.NewLog(), false)
	require.NoError(t, err)

	res, err := objcodec.Parse(filepath.Join(dir, name))
	require.NoError(t, err)

	assert.Equal(t, g.Len(), res.Graph.Len())
	assert.Equal(t, len(g.ComputeAllPolygons()), len(res.Graph.ComputeAllPolygons()))
	assert.Contains(t, res.PreservedHeaders, "o Tetra")
}

// S6: round trip with reduction metadata carries the log and vertex-key
// remap through Write -> Parse.
func TestWrite_Parse_RoundTrip_WithReductionData(t *testing.T) {
	g, err := builder.Tetrahedron()
	require.NoError(t, err)

	newName, err := g.CollapseEdge("1", "2")
	require.NoError(t, err)

	log := reduction.NewLog()
	log.Append(reduction.Record{
		Iteration:       1,
		NewName:         newName,
		LeftName:        "1",
		LeftCoords:      [3]float64{1, 1, 1},
		LeftNeighbours:  []string{"3", "4"},
		RightName:       "2",
		RightCoords:     [3]float64{1, -1, -1},
		RightNeighbours: []string{"3", "4"},
		Polygons:        [][3]string{{"1", "2", "3"}, {"1", "2", "4"}},
	})

	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { require.NoError(t, os.Chdir(cwd)) }()

	name, err := objcodec.Write("tetra", g, nil, log, true)
	require.NoError(t, err)
	assert.Contains(t, name, ".rr.obj")

	res, err := objcodec.Parse(filepath.Join(dir, name))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Log.Len())
	assert.Equal(t, newName, res.Log.Records()[0].NewName)
	assert.True(t, res.Graph.HasVertex(newName))
}
