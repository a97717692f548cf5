// Package server exposes the layout pipeline over HTTP for interactive
// design clients.
package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ChicagoDave/homeplanner/pkg/config"
	"github.com/ChicagoDave/homeplanner/pkg/render"
	"github.com/ChicagoDave/homeplanner/pkg/suggest"
)

// Server is the HTTP API for the planner.
type Server struct {
	cfg      *config.Config
	log      *log.Logger
	renderer *render.Renderer
	suggest  *suggest.Client
}

// New creates a server from the application configuration.
func New(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
		log: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "homeplanner",
		}),
		renderer: render.New(),
		suggest:  suggest.NewClient(cfg.Suggest),
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/api/health", s.handleHealth)
	r.Post("/api/plan", s.handlePlan)
	r.Post("/api/render", s.handleRender)
	r.Post("/api/suggest/{topic}", s.handleSuggest)

	return r
}

// Start runs the server until the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.log.Info("starting server", "addr", addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
