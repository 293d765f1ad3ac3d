package mesh

import (
	"fmt"

	"github.com/katalvlaran/quadmesh/jsonexport"
	"github.com/katalvlaran/quadmesh/objcodec"
)

// ProcessFile parses the OBJ file at path via objcodec.Parse and
// assembles the result into a Model ready for Reduce/Reproduce/Write/
// ToJSON. If the file carries REDUCTION_DATA from a prior reduction, the
// returned Model is already "reduced" (its Log is non-empty) and
// Reproduce can be called directly.
func ProcessFile(path string) (*Model, error) {
	res, err := objcodec.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("mesh.ProcessFile(%q): %w", path, err)
	}

	return newModel(res.Stem, res.Graph, res.PreservedHeaders, res.Log, res.OriginalIndexMap), nil
}

// Write delegates to objcodec.Write, emitting the model's current graph
// (plus, when includeLog is true, its reduction log) to a new OBJ file.
func (m *Model) Write(includeLog bool) (string, error) {
	name, err := objcodec.Write(m.Stem, m.Graph, m.PreservedHeaders, m.Log, includeLog)
	if err != nil {
		return "", fmt.Errorf("mesh.Write: %w", err)
	}
	return name, nil
}

// ToJSON delegates to jsonexport.Export, writing the model's current
// graph, its load-time maxima, and its reduction log to path.
func (m *Model) ToJSON(path string) error {
	if err := jsonexport.Export(path, m.Graph, m.Log, m.MaxVertices, m.MaxPolygons); err != nil {
		return fmt.Errorf("mesh.ToJSON: %w", err)
	}
	return nil
}
