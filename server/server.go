package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bluele/gcache"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/requests"
)

// Options configure a Server
type Options struct {
	Port           int
	AllowedOrigins []string
	RouteCacheSize int           // 0 disables the route cache
	RouteCacheTTL  time.Duration // 0 keeps entries until evicted
}

// OptionsFromConfig reads server and cache settings from the app config
func OptionsFromConfig(cfg config.AppConfig) Options {
	return Options{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RouteCacheSize: cfg.Cache.RouteCacheSize,
		RouteCacheTTL:  time.Duration(cfg.Cache.RouteCacheTTLSeconds) * time.Second,
	}
}

// Server serves catalogue queries over HTTP
type Server struct {
	opts    Options
	handler *requests.Handler
	routes  gcache.Cache
	metrics *metrics
	mux     chi.Router

	httpServer *http.Server
	addr       string
}

// New creates a server answering from h
func New(h *requests.Handler, opts Options) *Server {
	s := &Server{
		opts:    opts,
		handler: h,
		metrics: newMetrics(),
	}
	if opts.RouteCacheSize > 0 {
		b := gcache.New(opts.RouteCacheSize).LRU()
		if opts.RouteCacheTTL > 0 {
			b = b.Expiration(opts.RouteCacheTTL)
		}
		s.routes = b.Build()
	}
	s.mux = s.newRouter()
	return s
}

func (s *Server) newRouter() chi.Router {
	origins := s.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	}))
	r.Use(s.observe)

	r.Get("/health", s.handleHealth)
	r.Get("/api/buses/{name}", s.handleBus)
	r.Get("/api/stops/{name}", s.handleStop)
	r.Get("/api/route", s.handleRoute)
	r.Get("/api/map.svg", s.handleMap)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	r.NotFound(s.handleNotFound)
	return r
}

// Handler returns the HTTP handler with all routes and middleware
func (s *Server) Handler() http.Handler { return s.mux }

// Addr returns the listening address once Start succeeded
func (s *Server) Addr() string { return s.addr }

// Start listens on the configured port and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.opts.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.addr = ln.Addr().String()
	s.httpServer = &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.addr)
	return nil
}

// Shutdown stops accepting connections and waits for active requests
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then shuts the
// server down within 10 seconds
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}
