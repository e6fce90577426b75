// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/toolshelf/internal/core/tag"
	"github.com/taibuivan/toolshelf/internal/core/tool"
	"github.com/taibuivan/toolshelf/internal/core/tooltag"
	"github.com/taibuivan/toolshelf/internal/platform/apperr"
	"github.com/taibuivan/toolshelf/internal/platform/config"
	"github.com/taibuivan/toolshelf/internal/platform/constants"
	"github.com/taibuivan/toolshelf/internal/platform/metrics"
	"github.com/taibuivan/toolshelf/internal/platform/middleware"
	"github.com/taibuivan/toolshelf/internal/platform/respond"
	"github.com/taibuivan/toolshelf/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler, always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler, 200 only when every dependency answers.
	Readiness http.HandlerFunc

	// Auth handles signin, login and logoff.
	Auth *auth.Handler

	// Gate authenticates every resource route.
	Gate func(http.Handler) http.Handler

	Tools    *tool.Handler
	Tags     *tag.Handler
	ToolTags *tooltag.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// ctx bounds the background work started by the middleware (rate limiter sweeps).
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, recorder *metrics.Recorder, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log, recorder))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)
	r.Use(middleware.VerboseErrors(!cfg.IsProduction()))

	// JSON bodies for router-level misses. Set before mounting so subrouters inherit them.
	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Route"))
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.MethodNotAllowed(request.Method))
	})

	// # Infrastructure Endpoints
	// Unauthenticated probes and the prometheus scrape target.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", recorder.Handler())

	// # Application API
	h.Auth.Register(r)

	r.Group(func(protected chi.Router) {
		protected.Use(h.Gate)

		protected.Route("/tools", h.Tools.RegisterRoutes)
		protected.Route("/tags", h.Tags.RegisterRoutes)
		protected.Route("/tooltags", h.ToolTags.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the root router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
