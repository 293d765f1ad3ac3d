package objcodec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/quadmesh/core"
	"github.com/katalvlaran/quadmesh/reduction"
	"github.com/katalvlaran/quadmesh/vector"
)

// Write emits graph (plus, when includeLog is true, log and the
// REDUCTION_VERTEX_KEYS remap) to a new OBJ file named
// "<stem>_reduced_<timestamp>[.rr].obj" in the current directory, and
// returns that filename.
//
// Layout, in order: a length marker comment, a generated-at comment, the
// preserved header lines, a blank line, "v" lines in graph order, a
// blank line, deduplicated "vn" lines (one per distinct triangle
// normal), a blank line, "f a// b// c//" face lines (the face line does
// not reference the vn index — the normal table exists for inspection,
// not for indexed lookup, matching this codec's upstream behavior).
// When includeLog is true, a REDUCTION_VERTEX_KEYS comment is prepended
// (the current vertex order, so a later Parse can remap future "v"/"f"
// positions back to these names) and a REDUCTION_DATA comment holding
// the JSON-encoded log is appended.
func Write(stem string, graph *core.Graph, headers []string, log *reduction.Log, includeLog bool) (string, error) {
	records := log.Records()

	initialLine := "# REDUCTION_V1_LEN_0"
	if includeLog {
		initialLine = fmt.Sprintf("# REDUCTION_V1_LEN_%d", len(records))
	}

	now := time.Now()

	var lines []string
	lines = append(lines, initialLine)
	lines = append(lines, fmt.Sprintf("# Generated at %s", now.Format(time.RFC3339Nano)))
	lines = append(lines, "# Preserved Headers")
	lines = append(lines, headers...)
	lines = append(lines, "", "# Vertices")

	order := graph.Order()
	realIndexMap := make(map[string]int, len(order))
	for i, name := range order {
		v, _ := graph.Vertex(name)
		c := v.Coords()
		lines = append(lines, fmt.Sprintf("v %s %s %s", formatFloat(c.X()), formatFloat(c.Y()), formatFloat(c.Z())))
		realIndexMap[name] = i + 1
	}

	normalIndex := make(map[vector.Vec3]int)
	var normalLines []string
	var faceLines []string

	for _, tri := range graph.ComputeAllPolygons() {
		idx, seen := normalIndex[tri.Normal]
		if !seen {
			idx = len(normalIndex) + 1
			normalIndex[tri.Normal] = idx
			normalLines = append(normalLines, fmt.Sprintf("vn %s %s %s",
				formatFloat(tri.Normal.X()), formatFloat(tri.Normal.Y()), formatFloat(tri.Normal.Z())))
		}

		a, b, c := realIndexMap[tri.Vertices[0]], realIndexMap[tri.Vertices[1]], realIndexMap[tri.Vertices[2]]
		faceLines = append(faceLines, fmt.Sprintf("f %d// %d// %d//", a, b, c))
	}

	lines = append(lines, "", "# Normal Vectors")
	lines = append(lines, normalLines...)
	lines = append(lines, "", "# Polygon Faces")
	lines = append(lines, faceLines...)

	if includeLog {
		lines = append(lines, "")

		keysJSON, err := json.Marshal(order)
		if err != nil {
			return "", fmt.Errorf("objcodec.Write: %w", err)
		}
		lines = append([]string{fmt.Sprintf("# REDUCTION_VERTEX_KEYS %s", keysJSON)}, lines...)

		dataJSON, err := json.Marshal(records)
		if err != nil {
			return "", fmt.Errorf("objcodec.Write: %w", err)
		}
		lines = append(lines, fmt.Sprintf("# REDUCTION_DATA %s", dataJSON))
	}

	suffix := ""
	if includeLog {
		suffix = ".rr"
	}
	filename := fmt.Sprintf("%s_reduced_%d%s.obj", stem, now.UnixNano(), suffix)

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("objcodec.Write(%q): %w", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return "", fmt.Errorf("objcodec.Write(%q): %w", filename, err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("objcodec.Write(%q): %w", filename, err)
	}

	return filename, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
