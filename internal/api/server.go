// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api assembles the router: global middleware, the open routes and the
gated management routes.

Open: /health, /ready, POST /api/auth/login, POST /api/init and
GET /api/public/groups. Everything else under /api passes the auth gate, and
every successful write there drops the cached public board.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/linkdeck/internal/auth"
	"github.com/taibuivan/linkdeck/internal/core/group"
	"github.com/taibuivan/linkdeck/internal/core/listing"
	"github.com/taibuivan/linkdeck/internal/core/ordering"
	"github.com/taibuivan/linkdeck/internal/core/site"
	"github.com/taibuivan/linkdeck/internal/core/transfer"
	"github.com/taibuivan/linkdeck/internal/platform/config"
	"github.com/taibuivan/linkdeck/internal/platform/constants"
	"github.com/taibuivan/linkdeck/internal/platform/middleware"
)

// # Server Definitions

// Server owns the router and the listener.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers are the route handlers built in main.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	// Auth serves POST /api/auth/login.
	Auth *auth.Handler

	// Init serves POST /api/init.
	Init http.Handler

	// Listing serves the public board.
	Listing *listing.Handler

	Groups   *group.Handler
	Sites    *site.Handler
	Ordering *ordering.Handler
	Transfer *transfer.Handler
}

// # Server Initialization

/*
NewServer constructs the chi router with the full middleware chain and
registers all route groups.

Parameters:
  - context: Cancels background middleware work on shutdown
  - cfg: *config.Config
  - log: *slog.Logger
  - gate: *middleware.Gate (applied to the gated routes)
  - onWrite: Called after every successful gated write
  - h: Handlers
*/
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, gate *middleware.Gate, onWrite func(ctx context.Context), h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	if cfg.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	r.Route("/api", func(api chi.Router) {
		// ## Open
		api.Mount("/auth", h.Auth.Routes())
		api.Method(http.MethodPost, "/init", h.Init)
		api.Mount("/public", h.Listing.Routes())

		// ## Gated
		api.Group(func(gated chi.Router) {
			gated.Use(middleware.Authenticate(gate))
			gated.Use(middleware.AfterWrite(onWrite))

			gated.Mount("/groups", h.Groups.Routes())
			gated.Mount("/sites", h.Sites.Routes())
			h.Ordering.RegisterRoutes(gated)
			h.Transfer.RegisterRoutes(gated)
		})
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

// Handler exposes the routed handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe blocks until the listener fails or Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and waits up to timeout for
// in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
