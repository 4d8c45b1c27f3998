package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/yndnr/hhbook/internal/core/service"
	"github.com/yndnr/hhbook/internal/server/httpserver/handler"
	"github.com/yndnr/hhbook/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Service handles document and backup operations.
	Service *service.Service

	// Metrics is served at /metrics. Nil disables the endpoint.
	Metrics *metric.Registry

	// Logger for access logs and panics.
	Logger *slog.Logger

	// CORSAllowedOrigins lists the UI origins allowed to call the API.
	CORSAllowedOrigins []string
}

// NewRouter creates the router with all routes and middleware.
//
// Middleware order: Recover -> RequestID -> AccessLog -> CORS -> handler.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	h := handler.New(cfg.Service, log)

	r := chi.NewRouter()
	r.Use(
		Recover(log),
		RequestID(),
		AccessLog(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", HeaderRequestID},
			ExposedHeaders:   []string{HeaderRequestID, "X-Error-Code"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
	)

	r.Get("/health", h.HandleHealth)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}
	r.Route("/api/v1", h.Routes)

	return r
}
