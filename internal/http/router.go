// Package httpapi assembles the chi router: shared middleware, health and
// metrics endpoints, module routes and the admin-guarded group.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carenest/internal/platform/metrics"
	"carenest/pkg/platform/httputil"
	"carenest/pkg/platform/middleware/admin"
	"carenest/pkg/platform/middleware/logging"
	"carenest/pkg/platform/middleware/metadata"
	"carenest/pkg/platform/middleware/request"
	"carenest/pkg/platform/middleware/requesttime"
)

const requestTimeout = 30 * time.Second

// Routes is implemented by every module handler.
type Routes interface {
	Register(r chi.Router)
}

// HealthCheck checks one backing dependency.
type HealthCheck func(ctx context.Context) error

type Config struct {
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	AdminToken string
	Checks     map[string]HealthCheck
	Public     []Routes
	// Admin registrars mount under the X-Admin-Token guard.
	Admin []func(r chi.Router)
}

func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Recoverer)
	r.Use(logging.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(middleware.Timeout(requestTimeout))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.Envelope{Success: false, Message: "Route not found"})
	})
	r.Get("/health", healthHandler(cfg.Checks))
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	for _, routes := range cfg.Public {
		routes.Register(r)
	}
	r.Group(func(r chi.Router) {
		r.Use(admin.RequireAdminToken(cfg.AdminToken, cfg.Logger))
		for _, register := range cfg.Admin {
			register(r)
		}
	})
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: map[string]string{}}
		status := http.StatusOK
		for name, check := range checks {
			if err := check(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		httputil.WriteJSON(w, status, httputil.Envelope{
			Success: status == http.StatusOK,
			Message: "CareNest API is running",
			Data:    resp,
		})
	}
}
