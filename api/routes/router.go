// Package routes assembles the HTTP surface: middleware chain, health
// probes, metrics, and the versioned API.
package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rdmartins/drilltrack-backend/api/controllers"
	"github.com/rdmartins/drilltrack-backend/api/middleware"
	"github.com/rdmartins/drilltrack-backend/internal/insights"
	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	"github.com/rdmartins/drilltrack-backend/pkg/config"
	"github.com/rdmartins/drilltrack-backend/pkg/logger"
	"github.com/rdmartins/drilltrack-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	inventoryService inventory.Service,
	insightService insights.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.Origins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	now := func() time.Time { return time.Now().UTC() }

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.ListInventory(inventoryService, logg))
			r.Get("/critical", controllers.ListCriticalInventory(inventoryService, logg))
		})

		r.Route("/withdrawals", func(r chi.Router) {
			r.Get("/", controllers.ListWithdrawals(inventoryService, logg))
			r.Post("/", controllers.CreateWithdrawal(inventoryService, logg))
		})

		r.Get("/dashboard", controllers.Dashboard(inventoryService, logg, now))
		r.Post("/insights", controllers.GenerateInsight(inventoryService, insightService, logg))
		r.Get("/reports/withdrawals.xlsx", controllers.DownloadWithdrawalsReport(inventoryService, logg, now))
	})

	return r
}
