// Package httptransport wires the public HTTP surface: code endpoints,
// health probes, and the Prometheus scrape target.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	codeshandler "codice/internal/codes/handler"
	"codice/internal/platform/health"
	"codice/internal/platform/metrics"
	"codice/internal/platform/middleware"
)

// Deps carries everything the router mounts. Handlers stay thin; business
// logic lives in the services behind them.
type Deps struct {
	Codes   *codeshandler.Handler
	Health  *health.Handler
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	deps.Health.Register(r)
	deps.Codes.Register(r)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
