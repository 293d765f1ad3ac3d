// Package jsonexport emits a viewer-friendly JSON document describing a
// mesh's current vertices, discovered polygons, the sequential-position
// remap needed to reconcile them with an OBJ file's "v"/"f" indices, and
// the reduction log that produced the current state. It operates on
// core.Graph and reduction.Log directly, mirroring objcodec's
// cycle-avoidance shape.
package jsonexport
