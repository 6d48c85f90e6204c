// Package api provides the HTTP surface for Kavach.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/upi-kavach/kavach/internal/classify"
	"github.com/upi-kavach/kavach/internal/content"
	"github.com/upi-kavach/kavach/internal/domain"
	"github.com/upi-kavach/kavach/internal/graph"
	"github.com/upi-kavach/kavach/internal/stats"
	"github.com/upi-kavach/kavach/internal/triage"
)

// Server represents the HTTP API server.
type Server struct {
	router  *chi.Mux
	handler *Handler
	server  *http.Server
	config  domain.ServerConfig
}

// NewServer creates a new API server.
func NewServer(cfg domain.ServerConfig, manager *triage.Manager, engine *classify.Engine, generator *content.Generator, g *graph.Graph, cache domain.Cache, bus domain.EventBus, collector *stats.Collector, version string) *Server {
	handler := NewHandler(manager, engine, generator, g, cache, bus, collector, version)
	router := chi.NewRouter()

	// Global middleware stack
	router.Use(CORSMiddleware)         // CORS for browser clients
	router.Use(RecoverMiddleware)      // Recover from panics
	router.Use(TracingMiddleware)      // OpenTelemetry tracing
	router.Use(LoggingMiddleware)      // Request logging
	router.Use(middleware.RealIP)      // Extract real IP
	router.Use(middleware.Compress(5)) // Gzip compression

	// Health endpoints
	router.Get("/health", handler.Health)
	router.Get("/ready", handler.Ready)

	// Triage sessions
	router.Post("/sessions", handler.StartSession)
	router.Get("/sessions/{id}", handler.GetSession)
	router.Post("/sessions/{id}/answers", handler.Answer)
	router.Post("/sessions/{id}/back", handler.Back)
	router.Get("/sessions/{id}/result", handler.GetResult)

	// Reporting content generation
	router.Post("/content", handler.GenerateContent)

	// Reference data
	router.Get("/banks", handler.ListBanks)
	router.Get("/banks/{name}", handler.GetBank)
	router.Get("/questions", handler.ListQuestions)
	router.Get("/rules", handler.ListRules)

	// Aggregates
	router.Get("/stats", handler.GetStats)

	return &Server{
		router:  router,
		handler: handler,
		config:  cfg,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the Chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Handler returns the handler for testing.
func (s *Server) Handler() *Handler {
	return s.handler
}
