package jsonexport

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/quadmesh/core"
	"github.com/katalvlaran/quadmesh/reduction"
)

type maximums struct {
	Vertices int `json:"vertices"`
	Polygons int `json:"polygons"`
}

type vertexEntry struct {
	Name   string     `json:"name"`
	Coords [3]float64 `json:"coords"`
}

type document struct {
	Maximums      maximums          `json:"maximums"`
	Vertices      []vertexEntry     `json:"vertices"`
	Polygons      [][3]string       `json:"polygons"`
	GraphIndexMap map[string]int    `json:"graph_index_map"`
	Reduction     []reduction.Record `json:"reduction"`
}

// Export writes path a JSON document describing graph's current
// vertices (in graph order) and discovered polygons, a name->sequential
// position map (1-based, matching the position an OBJ "v" line for that
// vertex would occupy), and log's records. maxVertices/maxPolygons are
// the maxima captured at load time (before any reduction), not graph's
// current counts.
func Export(path string, graph *core.Graph, log *reduction.Log, maxVertices, maxPolygons int) error {
	order := graph.Order()

	doc := document{
		Maximums:      maximums{Vertices: maxVertices, Polygons: maxPolygons},
		Vertices:      make([]vertexEntry, 0, len(order)),
		GraphIndexMap: make(map[string]int, len(order)),
		Reduction:     log.Records(),
	}

	for i, name := range order {
		v, _ := graph.Vertex(name)
		c := v.Coords()
		doc.Vertices = append(doc.Vertices, vertexEntry{Name: name, Coords: [3]float64{c.X(), c.Y(), c.Z()}})
		doc.GraphIndexMap[name] = i + 1
	}

	for _, tri := range graph.ComputeAllPolygons() {
		doc.Polygons = append(doc.Polygons, tri.Vertices)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonexport.Export(%q): %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("jsonexport.Export(%q): %w", path, err)
	}

	return nil
}
