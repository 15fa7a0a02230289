package routing

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/graph"
)

const (
	kmhToMetersPerMin = 1000.0 / 60.0
	// transferPenalty is added per remaining stop to rides that end before
	// the terminus of their traversal
	transferPenalty = 1e-3
)

// Router holds the routing graph built from one catalogue snapshot
type Router struct {
	cat      *catalogue.Catalogue
	settings Settings
	graph    *graph.DirectedWeightedGraph
	engine   *graph.Router
	edges    []edgeInfo // indexed by graph.EdgeID
}

// NewRouter builds the routing graph for cat. cat must not change afterwards.
func NewRouter(cat *catalogue.Catalogue, settings Settings) (*Router, error) {
	if settings.BusVelocity <= 0 || settings.BusWaitTime < 0 {
		return nil, fmt.Errorf("%w: wait=%d velocity=%g", ErrInvalidSettings, settings.BusWaitTime, settings.BusVelocity)
	}
	r := &Router{
		cat:      cat,
		settings: settings,
		graph:    graph.NewDirectedWeightedGraph(2 * cat.StopCount()),
	}
	r.addWaitEdges()
	r.addRideEdges()
	r.engine = graph.NewRouter(r.graph)
	return r, nil
}

// WaitVertex returns the wait vertex of a stop
func WaitVertex(id catalogue.StopID) graph.VertexID { return graph.VertexID(2 * id) }

// RideVertex returns the ride vertex of a stop
func RideVertex(id catalogue.StopID) graph.VertexID { return WaitVertex(id) + 1 }

func stopOfVertex(v graph.VertexID) catalogue.StopID { return catalogue.StopID(v / 2) }

func (r *Router) addEdge(from, to graph.VertexID, weight float64, info edgeInfo) {
	r.graph.AddEdge(graph.Edge{From: from, To: to, Weight: weight})
	r.edges = append(r.edges, info)
}

func (r *Router) addWaitEdges() {
	wait := float64(r.settings.BusWaitTime)
	for _, stop := range r.cat.Stops() {
		r.addEdge(WaitVertex(stop.ID), RideVertex(stop.ID), wait, edgeInfo{realTime: wait})
	}
}

func (r *Router) addRideEdges() {
	for _, bus := range r.cat.Buses() {
		if len(bus.Stops) < 2 {
			continue
		}
		r.addTraversal(bus.Name, bus.Stops)
		if !bus.IsRoundtrip {
			reversed := make([]catalogue.StopID, len(bus.Stops))
			for i, id := range bus.Stops {
				reversed[len(bus.Stops)-1-i] = id
			}
			r.addTraversal(bus.Name, reversed)
		}
	}
}

func (r *Router) addTraversal(busName string, stops []catalogue.StopID) {
	metersPerMin := r.settings.BusVelocity * kmhToMetersPerMin
	last := len(stops) - 1
	for i := 0; i < last; i++ {
		distance := 0
		for j := i + 1; j <= last; j++ {
			distance += r.cat.GetDistance(stops[j-1], stops[j])
			if stops[i] == stops[j] {
				continue
			}
			baseTime := float64(distance) / metersPerMin
			penalty := 0.0
			if j < last {
				penalty = transferPenalty * float64(len(stops)-j)
			}
			r.addEdge(RideVertex(stops[i]), WaitVertex(stops[j]), baseTime+penalty, edgeInfo{
				busName:   busName,
				spanCount: j - i,
				realTime:  baseTime,
			})
		}
	}
}

// BuildRoute returns the fastest itinerary between two stops. ok is false if
// either stop is unknown or no itinerary exists.
func (r *Router) BuildRoute(from, to string) (RouteResult, bool) {
	fromStop, ok := r.cat.FindStop(from)
	if !ok {
		return RouteResult{}, false
	}
	toStop, ok := r.cat.FindStop(to)
	if !ok {
		return RouteResult{}, false
	}
	if fromStop.ID == toStop.ID {
		return RouteResult{Items: []Item{}}, true
	}

	path, ok := r.engine.FindPath(WaitVertex(fromStop.ID), WaitVertex(toStop.ID))
	if !ok {
		return RouteResult{}, false
	}

	res := RouteResult{Items: make([]Item, 0, len(path.Edges))}
	for _, id := range path.Edges {
		edge := r.graph.Edge(id)
		info := r.edges[id]
		if info.busName == "" {
			res.Items = append(res.Items, Item{
				Kind:     ItemWait,
				StopName: r.cat.Stop(stopOfVertex(edge.From)).Name,
				Time:     edge.Weight,
			})
			res.TotalTime += edge.Weight
			continue
		}
		res.Items = append(res.Items, Item{
			Kind:      ItemBus,
			BusName:   info.busName,
			SpanCount: info.spanCount,
			Time:      info.realTime,
		})
		res.TotalTime += info.realTime
	}
	return res, true
}
