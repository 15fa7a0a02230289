package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/bluele/gcache"
	"github.com/go-chi/chi/v5"

	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/internal"
	"github.com/theoremus-urban-solutions/transit-catalogue/requests"
	"github.com/theoremus-urban-solutions/transit-catalogue/routing"
)

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
	Stops  int    `json:"stops"`
	Buses  int    `json:"buses"`
}

// BusResponse is the body of GET /api/buses/{name}
type BusResponse struct {
	Name            string  `json:"name"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
	RouteLength     int     `json:"route_length"`
	Curvature       float64 `json:"curvature"`
}

// StopResponse is the body of GET /api/stops/{name}
type StopResponse struct {
	Name  string   `json:"name"`
	Buses []string `json:"buses"`
}

// RouteResponse is the body of GET /api/route
type RouteResponse struct {
	From      string               `json:"from"`
	To        string               `json:"to"`
	TotalTime float64              `json:"total_time"`
	Items     []requests.RouteItem `json:"items"`
}

type routeKey struct {
	from, to string
}

type routeEntry struct {
	result routing.RouteResult
	found  bool
}

var jsonWriter = formatter.NewResponseBuilder("")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := jsonWriter.WriteJSON(w, v); err != nil {
		log.Printf("server: write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	cat := s.handler.Catalogue()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Stops:  cat.StopCount(),
		Buses:  len(cat.Buses()),
	})
}

func (s *Server) handleBus(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	info, ok := s.handler.GetBusStat(name)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, BusResponse{
		Name:            name,
		StopCount:       info.StopsCount,
		UniqueStopCount: info.UniqueStopsCount,
		RouteLength:     info.RouteLength,
		Curvature:       info.Curvature,
	})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	buses, ok := s.handler.GetBusesByStop(name)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, StopResponse{Name: name, Buses: buses})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}
	entry := s.route(from, to)
	internal.Debugf("route %q -> %q found=%v request_id=%s", from, to, entry.found, RequestID(r.Context()))
	if !entry.found {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, RouteResponse{
		From:      from,
		To:        to,
		TotalTime: entry.result.TotalTime,
		Items:     requests.RouteItems(entry.result),
	})
}

// route consults the cache before the router. Misses are cached too.
func (s *Server) route(from, to string) routeEntry {
	if s.routes == nil {
		res, ok := s.handler.BuildRoute(from, to)
		return routeEntry{result: res, found: ok}
	}
	key := routeKey{from: from, to: to}
	if v, err := s.routes.Get(key); err == nil {
		s.metrics.cacheHits.Inc()
		return v.(routeEntry)
	} else if !errors.Is(err, gcache.KeyNotFoundError) {
		log.Printf("server: route cache: %v", err)
	}
	s.metrics.cacheMisses.Inc()
	res, ok := s.handler.BuildRoute(from, to)
	entry := routeEntry{result: res, found: ok}
	if err := s.routes.Set(key, entry); err != nil {
		log.Printf("server: route cache: %v", err)
	}
	return entry
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if err := s.handler.RenderMap().Render(w); err != nil {
		log.Printf("server: write map: %v", err)
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}
