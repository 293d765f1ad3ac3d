package objcodec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/quadmesh/core"
	"github.com/katalvlaran/quadmesh/reduction"
)

// ParseResult is everything Parse recovers from one OBJ file: the
// rebuilt graph, any header lines this codec doesn't interpret but must
// round-trip, the reduction log embedded in REDUCTION_DATA (if any), the
// REDUCTION_VERTEX_KEYS remap from sequential position to original
// vertex name (if any), and the filename stem used to derive output
// names.
type ParseResult struct {
	Graph            *core.Graph
	PreservedHeaders []string
	Log              *reduction.Log
	OriginalIndexMap map[int]string
	Stem             string
}

// Parse reads the OBJ file at path. Supported opcodes: "v" (vertex),
// "vt"/"vn" (ignored), "f" (triangular face only), "#" (comment, see
// below). "vp" and "l" return ErrUnsupportedFeature, as does a face with
// other than exactly three vertex references. Any other opcode
// (o, g, s, mtllib, ...) is preserved verbatim except "usemtl", which is
// dropped silently.
//
// Two comment forms carry this codec's own metadata and are consumed
// rather than preserved:
//   - "# REDUCTION_VERTEX_KEYS [...]" — a JSON array of original vertex
//     names, position i (1-based) mapping to OriginalIndexMap[i].
//   - "# REDUCTION_DATA [...]" — a JSON array of reduction.Record.
//
// All other comments are dropped (matching the original codec's
// behavior: only these two prefixes are recognised, and the catch-all
// comment handler drops anything else rather than preserving it).
func Parse(path string) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objcodec.Parse(%q): %w", path, err)
	}
	defer f.Close()

	graph := core.NewGraph()
	var preserved []string
	log := reduction.NewLog()
	indexMap := make(map[int]string)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		opcode := fields[0]
		args := fields[1:]

		switch opcode {
		case "v":
			if err := parseVertex(graph, indexMap, args); err != nil {
				return nil, parseErrorf(lineNo, line, err)
			}
		case "vt", "vn":
			// Texture coordinates are not carried; normals are recomputed from geometry on write.
		case "vp":
			return nil, parseErrorf(lineNo, line, fmt.Errorf("%w: vp (free-form geometry)", ErrUnsupportedFeature))
		case "l":
			return nil, parseErrorf(lineNo, line, fmt.Errorf("%w: l (polyline)", ErrUnsupportedFeature))
		case "f":
			if err := parseFace(graph, indexMap, args); err != nil {
				return nil, parseErrorf(lineNo, line, err)
			}
		case "#":
			if err := parseComment(args, log, indexMap); err != nil {
				return nil, parseErrorf(lineNo, line, err)
			}
		default:
			if opcode != "usemtl" {
				preserved = append(preserved, opcode+" "+strings.Join(args, " "))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objcodec.Parse(%q): %w", path, err)
	}

	return &ParseResult{
		Graph:            graph,
		PreservedHeaders: preserved,
		Log:              log,
		OriginalIndexMap: indexMap,
		Stem:             stemOf(path),
	}, nil
}

func stemOf(path string) string {
	base := path
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	parts := strings.Split(base, ".")
	if len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, ".")
}

func parseVertex(graph *core.Graph, indexMap map[int]string, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: vertex requires exactly 3 coordinates, got %d", ErrInvalidInput, len(args))
	}

	coords := make([]float64, 3)
	for i, tok := range args {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		coords[i] = v
	}

	nodeIndex := graph.Len() + 1
	name := strconv.Itoa(nodeIndex)
	if len(indexMap) > 0 {
		mapped, ok := indexMap[nodeIndex]
		if !ok {
			return fmt.Errorf("%w: no REDUCTION_VERTEX_KEYS entry for position %d", ErrInvalidInput, nodeIndex)
		}
		name = mapped
	}

	if err := graph.AddNode(name, coords); err != nil {
		return err
	}
	return nil
}

func parseFace(graph *core.Graph, indexMap map[int]string, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: only triangular faces are supported, got %d vertices", ErrUnsupportedFeature, len(args))
	}

	names := make([]string, 3)
	for i, tok := range args {
		ref := strings.SplitN(tok, "/", 2)[0]
		if len(indexMap) > 0 {
			pos, err := strconv.Atoi(ref)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			mapped, ok := indexMap[pos]
			if !ok {
				return fmt.Errorf("%w: no REDUCTION_VERTEX_KEYS entry for position %d", ErrInvalidInput, pos)
			}
			names[i] = mapped
		} else {
			names[i] = ref
		}
	}

	a, b, c := names[0], names[1], names[2]
	if err := graph.AddEdge(a, b); err != nil {
		return err
	}
	if err := graph.AddEdge(a, c); err != nil {
		return err
	}
	if err := graph.AddEdge(b, c); err != nil {
		return err
	}
	return nil
}

func parseComment(args []string, log *reduction.Log, indexMap map[int]string) error {
	if len(args) == 0 {
		return nil
	}

	switch {
	case strings.HasPrefix(args[0], "REDUCTION_DATA"):
		if len(args) == 1 {
			return nil
		}
		var records []reduction.Record
		if err := json.Unmarshal([]byte(args[1]), &records); err != nil {
			return fmt.Errorf("%w: REDUCTION_DATA: %v", ErrInvalidInput, err)
		}
		for _, r := range records {
			log.Append(r)
		}
	case args[0] == "REDUCTION_VERTEX_KEYS":
		if len(args) == 1 {
			return nil
		}
		var keys []string
		if err := json.Unmarshal([]byte(args[1]), &keys); err != nil {
			return fmt.Errorf("%w: REDUCTION_VERTEX_KEYS: %v", ErrInvalidInput, err)
		}
		for i, key := range keys {
			indexMap[i+1] = key
		}
	}

	return nil
}
