package mesh

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/quadmesh/core"
	"github.com/katalvlaran/quadmesh/reduction"
	"github.com/katalvlaran/quadmesh/vector"
)

// Model composes a core.Graph with a reduction.Log plus the bookkeeping
// needed to write it back out: the OBJ header lines this module doesn't
// understand but must preserve, the original->parsed index remap (set
// only when a file being re-read already carried REDUCTION_VERTEX_KEYS),
// and the vertex/polygon maximums captured at load time.
//
// A Model is "reduced" iff Log.Len() > 0, and reproducible iff reduced and
// the graph is the direct result of applying that log to some base graph.
type Model struct {
	Graph            *core.Graph
	PreservedHeaders []string
	Log              *reduction.Log
	OriginalIndexMap map[int]string
	Stem             string

	MaxVertices int
	MaxPolygons int

	reproduced bool
}

// newModel assembles a Model from its constituent parts, computing the
// maxima the way the teacher snapshot captures derived stats at
// construction time (see core.Graph's Len and ComputeAllPolygons).
func newModel(stem string, graph *core.Graph, headers []string, log *reduction.Log, indexMap map[int]string) *Model {
	return &Model{
		Graph:            graph,
		PreservedHeaders: headers,
		Log:              log,
		OriginalIndexMap: indexMap,
		Stem:             stem,
		MaxVertices:      graph.Len(),
		MaxPolygons:      len(graph.ComputeAllPolygons()),
	}
}

// NewModel wraps a graph built directly (e.g. by the builder package)
// into a fresh, unreduced Model with no preserved headers and no
// original-index remap — the entry point for tests and CLI fixtures that
// never go through an OBJ file.
func NewModel(graph *core.Graph) *Model {
	return newModel("mesh", graph, nil, reduction.NewLog(), nil)
}

// Reduce repeatedly collapses the current best edge (per
// core.DeterminePreferredCollapsibleEdge) until the graph has no edges
// left, a supplied iteration cap is reached, or a supplied stop predicate
// fires. At least one of WithMaxIterations/WithStopPredicate must be
// supplied (ErrInvalidArgument otherwise); Reduce refuses to run twice on
// an already-reduced Model (ErrAlreadyReduced) — call Reproduce first.
//
// Each iteration snapshots both endpoints' coordinates, neighbour sets,
// and incident-polygon union BEFORE collapsing, matching the original
// implementation's ordering: the snapshot must precede CollapseEdge,
// since the endpoints no longer exist afterward.
func (m *Model) Reduce(opts ...ReduceOption) error {
	if m.Log.Len() > 0 {
		return fmt.Errorf("mesh.Reduce: %w", ErrAlreadyReduced)
	}

	cfg := newReduceConfig(opts...)
	if !cfg.valid() {
		return fmt.Errorf("mesh.Reduce: %w", ErrInvalidArgument)
	}

	iteration := 0
	for {
		iteration++

		edge, ok := m.Graph.DeterminePreferredCollapsibleEdge(cfg.edgeSelectionOpts...)
		if !ok {
			break
		}

		record, err := m.collapseAndRecord(iteration, edge)
		if err != nil {
			return fmt.Errorf("mesh.Reduce: %w", err)
		}
		m.Log.Append(record)

		if cfg.hasMaxIterations && iteration >= cfg.maxIterations {
			break
		}
		if cfg.stopPredicate != nil {
			polygonCount := len(m.Graph.ComputeAllPolygons())
			if cfg.stopPredicate(iteration, polygonCount) {
				break
			}
		}
	}

	return nil
}

func (m *Model) collapseAndRecord(iteration int, edge core.Edge) (reduction.Record, error) {
	l, r := edge.A, edge.B

	lv, _ := m.Graph.Vertex(l)
	rv, _ := m.Graph.Vertex(r)
	lNbrs, _ := m.Graph.Neighbours(l)
	rNbrs, _ := m.Graph.Neighbours(r)

	polygons := unionPolygonKeys(m.Graph, l, r)

	newName, err := m.Graph.CollapseEdge(l, r)
	if err != nil {
		return reduction.Record{}, err
	}

	return reduction.Record{
		Iteration:       iteration,
		NewName:         newName,
		LeftName:        l,
		LeftCoords:      toArray(lv.Coords()),
		LeftNeighbours:  lNbrs,
		RightName:       r,
		RightCoords:     toArray(rv.Coords()),
		RightNeighbours: rNbrs,
		Polygons:        polygons,
	}, nil
}

// unionPolygonKeys returns the deduplicated union of l's and r's incident
// triangle keys: l's keys in sorted order, then the not-yet-seen keys of
// r in sorted order — a deterministic flattening of the Python original's
// set union.
func unionPolygonKeys(g *core.Graph, l, r string) [][3]string {
	seen := make(map[[3]string]struct{})
	var out [][3]string

	collect := func(name string) {
		polys, err := g.ComputePolygons(name)
		if err != nil {
			return
		}
		keys := make([][3]string, 0, len(polys))
		for key := range polys {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			for k := 0; k < 3; k++ {
				if keys[i][k] != keys[j][k] {
					return keys[i][k] < keys[j][k]
				}
			}
			return false
		})
		for _, key := range keys {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}
	collect(l)
	collect(r)

	return out
}

func toArray(v vector.Vec3) [3]float64 {
	return [3]float64{v.X(), v.Y(), v.Z()}
}

// Reproduce replays the log in reverse (most recent collapse first),
// calling SplitVertex for each record, restoring the graph to its
// pre-reduction state exactly (P5). Requires the model to be reduced
// (ErrNotReduced otherwise); clears the log and marks the model
// reproduced on success, matching the Python original's one-shot
// semantics (reduction_records is emptied after reproduce()).
func (m *Model) Reproduce() error {
	if m.Log.Len() == 0 {
		return fmt.Errorf("mesh.Reproduce: %w", ErrNotReduced)
	}

	for _, rec := range m.Log.Reversed() {
		err := m.Graph.SplitVertex(
			rec.NewName,
			rec.LeftName, rec.LeftCoords[:], rec.LeftNeighbours,
			rec.RightName, rec.RightCoords[:], rec.RightNeighbours,
		)
		if err != nil {
			return fmt.Errorf("mesh.Reproduce: %w", err)
		}
	}

	m.Log.Clear()
	m.reproduced = true

	return nil
}

// Reproduced reports whether Reproduce has completed successfully on
// this Model.
func (m *Model) Reproduced() bool {
	return m.reproduced
}
