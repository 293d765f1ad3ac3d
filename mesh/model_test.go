package mesh_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/quadmesh/builder"
	"github.com/katalvlaran/quadmesh/mesh"
	"github.com/katalvlaran/quadmesh/reduction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTetrahedronModel(t *testing.T) *mesh.Model {
	t.Helper()
	g, err := builder.Tetrahedron()
	require.NoError(t, err)
	return mesh.NewModel(g)
}

// S1: one collapse on a tetrahedron drops the vertex count by exactly one.
func TestModel_Reduce_VertexCountMinusOne(t *testing.T) {
	m := newTetrahedronModel(t)
	before := m.Graph.Len()

	err := m.Reduce(mesh.WithMaxIterations(1))
	require.NoError(t, err)

	assert.Equal(t, before-1, m.Graph.Len())
	assert.Equal(t, 1, m.Log.Len())
}

// S2/P4: Reduce runs to completion (no stopping condition except edge
// exhaustion) when given a very large iteration cap, ending with <= 1
// vertex and no edges left.
func TestModel_Reduce_RunsToCompletion(t *testing.T) {
	m := newTetrahedronModel(t)

	err := m.Reduce(mesh.WithMaxIterations(1000))
	require.NoError(t, err)

	_, ok := m.Graph.DeterminePreferredCollapsibleEdge()
	assert.False(t, ok, "no edges should remain")
}

// P5/S4: Reproduce exactly restores vertex count and neighbour sets.
func TestModel_Reduce_Reproduce_RoundTrip(t *testing.T) {
	m := newTetrahedronModel(t)
	originalOrder := append([]string(nil), m.Graph.Order()...)

	require.NoError(t, m.Reduce(mesh.WithMaxIterations(2)))
	require.NoError(t, m.Reproduce())

	assert.ElementsMatch(t, originalOrder, m.Graph.Order())
	assert.Equal(t, 0, m.Log.Len())
	assert.True(t, m.Reproduced())

	for _, name := range originalOrder {
		nbrs, err := m.Graph.Neighbours(name)
		require.NoError(t, err)
		assert.Len(t, nbrs, 3, "K4 neighbour sets are restored")
	}
}

func TestModel_Reduce_RequiresStoppingCriterion(t *testing.T) {
	m := newTetrahedronModel(t)
	err := m.Reduce()
	assert.ErrorIs(t, err, mesh.ErrInvalidArgument)
}

func TestModel_Reduce_RefusesDoubleReduce(t *testing.T) {
	m := newTetrahedronModel(t)
	require.NoError(t, m.Reduce(mesh.WithMaxIterations(1)))

	err := m.Reduce(mesh.WithMaxIterations(1))
	assert.ErrorIs(t, err, mesh.ErrAlreadyReduced)
}

func TestModel_Reproduce_RequiresReduce(t *testing.T) {
	m := newTetrahedronModel(t)
	err := m.Reproduce()
	assert.ErrorIs(t, err, mesh.ErrNotReduced)
}

func TestModel_Reduce_StopPredicate(t *testing.T) {
	m := newTetrahedronModel(t)

	calls := 0
	err := m.Reduce(mesh.WithStopPredicate(func(iteration, polygonCount int) bool {
		calls++
		return iteration >= 1
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, m.Log.Len())
}

// P6: the reduction log round-trips through JSON without loss.
func TestModel_Log_SurvivesJSONRoundTrip(t *testing.T) {
	m := newTetrahedronModel(t)
	require.NoError(t, m.Reduce(mesh.WithMaxIterations(1)))

	records := m.Log.Records()
	data, err := json.Marshal(m.Log)
	require.NoError(t, err)
	roundLog := reduction.NewLog()
	require.NoError(t, json.Unmarshal(data, roundLog))
	assert.Equal(t, records, roundLog.Records())
}
