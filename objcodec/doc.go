// Package objcodec reads and writes the Wavefront OBJ dialect this module
// simplifies meshes in: plain vertices/faces plus two metadata comments
// this package owns, "REDUCTION_VERTEX_KEYS" and "REDUCTION_DATA", which
// let a reduced mesh be written out, reloaded, and reproduced exactly.
//
// Parse and Write operate on core.Graph and reduction.Log directly
// (never on mesh.Model) so that mesh can import this package without a
// cycle: mesh.Model is the composition point, objcodec is the codec.
package objcodec
