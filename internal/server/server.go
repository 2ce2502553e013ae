package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hongminglow/accounts-be/internal/accounts"
	"github.com/hongminglow/accounts-be/internal/config"
	"github.com/hongminglow/accounts-be/internal/http/handlers"
	"github.com/hongminglow/accounts-be/internal/metrics"
	"github.com/hongminglow/accounts-be/internal/middleware"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server. Request
// metrics are registered with reg and exposed on /metrics.
func New(cfg config.Config, svc *accounts.Service, reg *prometheus.Registry, logger *slog.Logger) *Server {
	return &Server{inner: &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Handler(cfg, svc, reg, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}}
}

// Handler builds the routed and instrumented handler tree.
func Handler(cfg config.Config, svc *accounts.Service, reg *prometheus.Registry, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewUsersHandler(svc).Register(mux)
	handlers.NewBusinessesHandler(svc).Register(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	var handler http.Handler = mux
	handler = middleware.Metrics(metrics.NewHTTP(reg), handler)
	handler = middleware.Logging(logger, handler)
	handler = middleware.SecurityHeaders(handler)
	handler = middleware.CORS(cfg.CORSOrigins, handler)
	return handler
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Addr is the address the server binds to.
func (s *Server) Addr() string {
	return s.inner.Addr
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
