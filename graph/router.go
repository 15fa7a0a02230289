package graph

import (
	"container/heap"
	"math"
)

// Path is a minimum-weight path as an ordered list of edges
type Path struct {
	Weight float64
	Edges  []EdgeID
}

// Router answers shortest-path queries over a fixed graph
type Router struct {
	graph *DirectedWeightedGraph
}

// NewRouter binds a router to g. g must not be modified afterwards.
func NewRouter(g *DirectedWeightedGraph) *Router {
	return &Router{graph: g}
}

// FindPath returns the minimum-weight path from one vertex to another.
// ok is false if to is unreachable from from.
func (r *Router) FindPath(from, to VertexID) (Path, bool) {
	g := r.graph
	if !g.hasVertex(from) || !g.hasVertex(to) {
		return Path{}, false
	}
	if from == to {
		return Path{Edges: []EdgeID{}}, true
	}

	n := g.VertexCount()
	dist := make([]float64, n)
	prevEdge := make([]EdgeID, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prevEdge[i] = -1
	}
	dist[from] = 0

	pq := &priorityQueue{}
	heap.Push(pq, &queueItem{vertex: from, priority: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*queueItem)
		if cur.priority > dist[cur.vertex] {
			// stale entry
			continue
		}
		if cur.vertex == to {
			break
		}
		for _, id := range g.incidence[cur.vertex] {
			e := g.edges[id]
			candidate := cur.priority + e.Weight
			if candidate < dist[e.To] {
				dist[e.To] = candidate
				prevEdge[e.To] = id
				heap.Push(pq, &queueItem{vertex: e.To, priority: candidate})
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return Path{}, false
	}

	edges := make([]EdgeID, 0)
	for v := to; v != from; {
		id := prevEdge[v]
		edges = append(edges, id)
		v = g.edges[id].From
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return Path{Weight: dist[to], Edges: edges}, true
}

type queueItem struct {
	vertex   VertexID
	priority float64
	index    int
}

type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].priority < pq[j].priority
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
