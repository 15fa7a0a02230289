// Package graph provides a directed weighted graph with stable edge ids and a
// Dijkstra shortest-path router over it.
//
// Vertices are dense integers in [0, VertexCount). Edges are appended with
// AddEdge and identified by the returned EdgeID, so callers can keep their
// own per-edge metadata in a side table indexed by EdgeID.
//
// Weights must be non-negative. The graph is meant to be filled once and then
// only read; a Router is safe for concurrent FindPath calls as long as the
// graph is no longer modified.
package graph
