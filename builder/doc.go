// Package builder provides deterministic fixture constructors for
// core.Graph: canonical small meshes (Tetrahedron, Octahedron) and a
// parametrized triangulated grid (QuadGrid), used by this module's own
// tests and by cmd/meshreduce's -fixture flag to exercise Reduce without
// first parsing an OBJ file from disk.
//
// The key type is BuilderOption, a function mutating a private
// builderConfig before construction — the same functional-option shape
// the rest of this module uses (see mesh.ReduceOption,
// core.EdgeSelectionOption).
package builder
