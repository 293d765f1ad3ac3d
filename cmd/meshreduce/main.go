// Command meshreduce loads a mesh — either parsed from an -in OBJ file
// or built from a -fixture (tetrahedron, octahedron, quadgrid) — reduces
// it by edge collapse until a target vertex count or an iteration cap is
// reached, and writes the result back out as OBJ (with the reduction
// log embedded, so it can be reproduced later) and, optionally, as JSON
// for a viewer.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/quadmesh/builder"
	"github.com/katalvlaran/quadmesh/mesh"
)

func main() {
	var (
		input          = flag.String("in", "", "path to the input OBJ file (mutually exclusive with -fixture)")
		fixture        = flag.String("fixture", "", "build a fixture mesh instead of parsing -in: \"tetrahedron\", \"octahedron\", or \"quadgrid\"")
		fixtureRows    = flag.Int("fixture-rows", 4, "rows for -fixture=quadgrid")
		fixtureCols    = flag.Int("fixture-cols", 4, "cols for -fixture=quadgrid")
		targetVertices = flag.Int("target-vertices", 0, "stop once the graph has this many vertices or fewer (0 disables)")
		maxIterations  = flag.Int("max-iterations", 0, "stop after this many collapses (0 disables)")
		optimalPos     = flag.Bool("optimal-position", false, "solve for the QEM-optimal collapse position instead of the midpoint")
		jsonOut        = flag.String("json-out", "", "optional path to also write a viewer JSON document")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "meshreduce: ", 0)

	if *input == "" && *fixture == "" {
		logger.Fatal("one of -in or -fixture is required")
	}
	if *input != "" && *fixture != "" {
		logger.Fatal("-in and -fixture are mutually exclusive")
	}
	if *targetVertices <= 0 && *maxIterations <= 0 {
		logger.Fatal("at least one of -target-vertices or -max-iterations must be set")
	}

	model, err := loadModel(*input, *fixture, *fixtureRows, *fixtureCols)
	if err != nil {
		logger.Fatalf("loading mesh: %v", err)
	}
	logger.Printf("loaded %d vertices, %d polygons", model.MaxVertices, model.MaxPolygons)

	var opts []mesh.ReduceOption
	if *maxIterations > 0 {
		opts = append(opts, mesh.WithMaxIterations(*maxIterations))
	}
	if *targetVertices > 0 {
		opts = append(opts, mesh.WithStopPredicate(func(iteration, polygonCount int) bool {
			return model.Graph.Len() <= *targetVertices
		}))
	}
	opts = append(opts, mesh.WithOptimalPosition(*optimalPos))

	if err := model.Reduce(opts...); err != nil {
		logger.Fatalf("reducing: %v", err)
	}
	logger.Printf("reduced to %d vertices in %d collapses", model.Graph.Len(), model.Log.Len())

	outPath, err := model.Write(true)
	if err != nil {
		logger.Fatalf("writing OBJ: %v", err)
	}
	fmt.Println(outPath)

	if *jsonOut != "" {
		if err := model.ToJSON(*jsonOut); err != nil {
			logger.Fatalf("writing JSON: %v", err)
		}
		fmt.Println(*jsonOut)
	}
}

// loadModel returns a Model built from the input OBJ file, or, when
// fixture is non-empty, from one of the builder package's deterministic
// fixture meshes ("tetrahedron", "octahedron", "quadgrid") — a way to
// exercise Reduce without parsing a file from disk.
func loadModel(input, fixture string, fixtureRows, fixtureCols int) (*mesh.Model, error) {
	if fixture == "" {
		model, err := mesh.ProcessFile(input)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", input, err)
		}
		return model, nil
	}

	var err error

	switch fixture {
	case "tetrahedron":
		graph, buildErr := builder.Tetrahedron()
		if buildErr != nil {
			return nil, fmt.Errorf("building tetrahedron fixture: %w", buildErr)
		}
		return mesh.NewModel(graph), nil
	case "octahedron":
		graph, buildErr := builder.Octahedron()
		if buildErr != nil {
			return nil, fmt.Errorf("building octahedron fixture: %w", buildErr)
		}
		return mesh.NewModel(graph), nil
	case "quadgrid":
		graph, buildErr := builder.QuadGrid(fixtureRows, fixtureCols)
		if buildErr != nil {
			return nil, fmt.Errorf("building quadgrid fixture: %w", buildErr)
		}
		return mesh.NewModel(graph), nil
	default:
		err = fmt.Errorf("unknown -fixture %q: want \"tetrahedron\", \"octahedron\", or \"quadgrid\"", fixture)
	}

	return nil, err
}
