package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.SummaryVec
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// newMetrics registers collectors on a registry owned by one server, so
// several servers can live in the same process
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "transit_request_duration_seconds",
			Help:       "Summary for serving requests per endpoint",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, []string{"endpoint", "code"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "transit_route_cache_hits_total",
			Help: "Route requests answered from the cache",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "transit_route_cache_misses_total",
			Help: "Route requests computed by the router",
		}),
	}
	m.registry.MustRegister(
		m.requests,
		m.cacheHits,
		m.cacheMisses,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}
