// Package web serves a generated output directory for browsing: the page
// images plus the layout manifest. Read-only; generation stays in the CLI.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Server exposes one generated page directory over HTTP.
type Server struct {
	dir        string
	router     *chi.Mux
	httpServer *http.Server
}

// NewServer creates a preview server for the given output directory.
func NewServer(dir string, host string, port int) *Server {
	r := chi.NewRouter()

	s := &Server{
		dir:    dir,
		router: r,
	}

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Get("/api/v1/health", s.handleHealth)
	s.router.Get("/api/v1/pages", s.handlePages)
	s.router.Get("/pages/{name}", s.handlePageImage)
	s.router.Get("/", s.handleIndex)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	log.Printf("Serving %s on %s", s.dir, s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down preview server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

// Router returns the chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
