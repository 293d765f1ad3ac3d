package reduction_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/quadmesh/reduction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(i int) reduction.Record {
	return reduction.Record{
		Iteration:       i,
		NewName:         "m1",
		LeftName:        "1",
		LeftCoords:      [3]float64{0, 0, 0},
		LeftNeighbours:  []string{"2", "3"},
		RightName:       "2",
		RightCoords:     [3]float64{1, 0, 0},
		RightNeighbours: []string{"1", "3"},
		Polygons:        [][3]string{{"1", "2", "3"}},
	}
}

func TestLog_AppendLenClear(t *testing.T) {
	l := reduction.NewLog()
	assert.Equal(t, 0, l.Len())

	l.Append(sampleRecord(1))
	assert.Equal(t, 1, l.Len())

	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestLog_Reversed(t *testing.T) {
	l := reduction.NewLog()
	l.Append(sampleRecord(1))
	l.Append(sampleRecord(2))

	rev := l.Reversed()
	require.Len(t, rev, 2)
	assert.Equal(t, 2, rev[0].Iteration)
	assert.Equal(t, 1, rev[1].Iteration)
}

// P6 (partial): JSON round trip for the log is lossless.
func TestLog_JSONRoundTrip(t *testing.T) {
	l := reduction.NewLog()
	l.Append(sampleRecord(1))

	data, err := json.Marshal(l)
	require.NoError(t, err)

	round := reduction.NewLog()
	require.NoError(t, json.Unmarshal(data, round))

	assert.Equal(t, l.Records(), round.Records())
}

func TestLog_Records_IsACopy(t *testing.T) {
	l := reduction.NewLog()
	l.Append(sampleRecord(1))

	recs := l.Records()
	recs[0].Iteration = 999

	assert.Equal(t, 1, l.Records()[0].Iteration)
}
