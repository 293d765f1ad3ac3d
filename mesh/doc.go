// Package mesh composes a core.Graph with a reduction.Log into Model, the
// top-level object this module's callers drive: Reduce mutates the graph
// and appends to the log, Reproduce replays the log in reverse to restore
// the original mesh, and Write/ToJSON delegate to the objcodec and
// jsonexport packages respectively.
//
// Model exclusively owns its Graph and Log; neither is meant to be shared
// with another Model. A Model is "reduced" iff its Log is non-empty, and
// "reproducible" iff reduced and the current graph is the result of
// applying the log in order to some base graph.
package mesh
