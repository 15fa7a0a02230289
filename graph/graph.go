package graph

import "fmt"

// VertexID identifies a vertex
type VertexID int

// EdgeID identifies an edge in insertion order
type EdgeID int

// Edge is a directed weighted edge
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}

// DirectedWeightedGraph stores edges with per-vertex incidence lists
type DirectedWeightedGraph struct {
	edges     []Edge
	incidence [][]EdgeID // from vertex -> outgoing edges
}

// NewDirectedWeightedGraph creates a graph with vertexCount vertices and no edges
func NewDirectedWeightedGraph(vertexCount int) *DirectedWeightedGraph {
	return &DirectedWeightedGraph{incidence: make([][]EdgeID, vertexCount)}
}

// AddEdge appends an edge and returns its id. It panics on an unknown vertex
// or a negative weight.
func (g *DirectedWeightedGraph) AddEdge(e Edge) EdgeID {
	if !g.hasVertex(e.From) || !g.hasVertex(e.To) {
		panic(fmt.Sprintf("graph: edge %d->%d out of range [0,%d)", e.From, e.To, len(g.incidence)))
	}
	if e.Weight < 0 {
		panic(fmt.Sprintf("graph: negative weight %g on edge %d->%d", e.Weight, e.From, e.To))
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	return id
}

// Edge returns the edge with the given id
func (g *DirectedWeightedGraph) Edge(id EdgeID) Edge { return g.edges[id] }

// IncidentEdges returns the ids of edges leaving v
func (g *DirectedWeightedGraph) IncidentEdges(v VertexID) []EdgeID { return g.incidence[v] }

// VertexCount returns the number of vertices
func (g *DirectedWeightedGraph) VertexCount() int { return len(g.incidence) }

// EdgeCount returns the number of edges
func (g *DirectedWeightedGraph) EdgeCount() int { return len(g.edges) }

func (g *DirectedWeightedGraph) hasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.incidence)
}
