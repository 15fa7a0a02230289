package requests

import (
	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/mapview"
	"github.com/theoremus-urban-solutions/transit-catalogue/routing"
)

const (
	msgNotFound    = "not found"
	msgUnknownType = "unknown request type"
)

// Response is one element of the output array
type Response interface {
	ID() int
}

// Header carries the request id shared by every response
type Header struct {
	RequestID int `json:"request_id"`
}

// ID returns the request id
func (h Header) ID() int { return h.RequestID }

// ErrorResponse reports a failed request
type ErrorResponse struct {
	Header
	ErrorMessage string `json:"error_message"`
}

// BusResponse answers a Bus request
type BusResponse struct {
	Header
	Curvature       float64 `json:"curvature"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

// StopResponse answers a Stop request
type StopResponse struct {
	Header
	Buses []string `json:"buses"`
}

// RouteItem is one itinerary segment
type RouteItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// RouteResponse answers a Route request
type RouteResponse struct {
	Header
	TotalTime float64     `json:"total_time"`
	Items     []RouteItem `json:"items"`
}

// MapResponse answers a Map request
type MapResponse struct {
	Header
	Map string `json:"map"`
}

// Handler answers queries against a loaded catalogue. The router and the
// renderer are optional; without them Route requests are not found and Map
// requests return an empty map.
type Handler struct {
	cat      *catalogue.Catalogue
	router   *routing.Router
	renderer *mapview.Renderer
}

// NewHandler creates a handler
func NewHandler(cat *catalogue.Catalogue, router *routing.Router, renderer *mapview.Renderer) *Handler {
	return &Handler{cat: cat, router: router, renderer: renderer}
}

// Catalogue returns the underlying catalogue
func (h *Handler) Catalogue() *catalogue.Catalogue { return h.cat }

// GetBusStat returns statistics for a bus
func (h *Handler) GetBusStat(name string) (catalogue.BusInfo, bool) {
	return h.cat.GetBusInfo(name)
}

// GetBusesByStop returns the sorted names of buses serving a stop
func (h *Handler) GetBusesByStop(name string) ([]string, bool) {
	return h.cat.GetBusesForStop(name)
}

// BuildRoute returns the fastest itinerary between two stops
func (h *Handler) BuildRoute(from, to string) (routing.RouteResult, bool) {
	if h.router == nil {
		return routing.RouteResult{}, false
	}
	return h.router.BuildRoute(from, to)
}

// RenderMap draws the network
func (h *Handler) RenderMap() *formatter.Document {
	if h.renderer == nil {
		return &formatter.Document{}
	}
	return h.renderer.Render(h.cat)
}

// Process answers stat requests in order
func (h *Handler) Process(reqs []StatRequest) []Response {
	out := make([]Response, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, h.Answer(req))
	}
	return out
}

// Answer answers a single stat request
func (h *Handler) Answer(req StatRequest) Response {
	header := Header{RequestID: req.ID}
	switch req.Type {
	case TypeBus:
		info, ok := h.GetBusStat(req.Name)
		if !ok {
			return ErrorResponse{Header: header, ErrorMessage: msgNotFound}
		}
		return BusResponse{
			Header:          header,
			Curvature:       info.Curvature,
			RouteLength:     info.RouteLength,
			StopCount:       info.StopsCount,
			UniqueStopCount: info.UniqueStopsCount,
		}
	case TypeStop:
		buses, ok := h.GetBusesByStop(req.Name)
		if !ok {
			return ErrorResponse{Header: header, ErrorMessage: msgNotFound}
		}
		return StopResponse{Header: header, Buses: buses}
	case TypeRoute:
		res, ok := h.BuildRoute(req.From, req.To)
		if !ok {
			return ErrorResponse{Header: header, ErrorMessage: msgNotFound}
		}
		return NewRouteResponse(header, res)
	case TypeMap:
		return MapResponse{Header: header, Map: h.RenderMap().String()}
	default:
		return ErrorResponse{Header: header, ErrorMessage: msgUnknownType}
	}
}

// NewRouteResponse converts an itinerary to its JSON form
func NewRouteResponse(header Header, res routing.RouteResult) RouteResponse {
	return RouteResponse{Header: header, TotalTime: res.TotalTime, Items: RouteItems(res)}
}

// RouteItems converts itinerary segments to their JSON form
func RouteItems(res routing.RouteResult) []RouteItem {
	items := make([]RouteItem, 0, len(res.Items))
	for _, it := range res.Items {
		switch it.Kind {
		case routing.ItemWait:
			items = append(items, RouteItem{Type: string(it.Kind), StopName: it.StopName, Time: it.Time})
		case routing.ItemBus:
			items = append(items, RouteItem{Type: string(it.Kind), Bus: it.BusName, SpanCount: it.SpanCount, Time: it.Time})
		}
	}
	return items
}
