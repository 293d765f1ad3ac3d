// Package reduction implements the ordered, replayable reduction log: the
// bookkeeping that lets a collapsed mesh be reconstructed exactly by
// replaying vertex splits in reverse.
//
// Record captures everything CollapseEdge's caller snapshotted just before
// the collapse: both endpoints' names, coordinates, and neighbour sets (at
// collapse time), the new (midpoint) name, and the union of triangles
// incident to either endpoint. Log is an ordered, append-only slice of
// Records that round-trips through encoding/json losslessly — neighbour
// sets are emitted as sorted slices, not map keys, so encoding is stable.
package reduction
