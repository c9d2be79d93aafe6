package rest

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frahmantamala/hr-records/api"
	"github.com/frahmantamala/hr-records/internal"
	"github.com/frahmantamala/hr-records/internal/band"
	"github.com/frahmantamala/hr-records/internal/orgunit"
	"github.com/frahmantamala/hr-records/internal/position"
	"github.com/frahmantamala/hr-records/internal/transport"
	"github.com/frahmantamala/hr-records/internal/transport/middleware"
	"github.com/frahmantamala/hr-records/internal/transport/swagger"
	"github.com/frahmantamala/hr-records/internal/worker"
)

// Handlers are the resource handlers mounted under /api/v1.
type Handlers struct {
	OrgUnits  *orgunit.Handler
	Workers   *worker.Handler
	Positions *position.Handler
	Bands     *band.Handler
}

// resourceHandler is the CRUD + list surface every HR resource exposes.
type resourceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Table(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, cfg *internal.Config, logger *slog.Logger) error {
	healthHandler := NewHealthHandler(transport.NewBaseHandler(logger), db)

	router.Use(middleware.RequestID)
	// compression wraps the logger so logged bodies stay readable
	router.Use(gziphandler.GzipHandler)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.Actor)

	if cfg.Server.RateLimit != "" {
		limit, err := middleware.RateLimit(cfg.Server.RateLimit)
		if err != nil {
			return err
		}
		router.Use(limit)
	}

	if cfg.Observability.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		router.Use(middleware.NewMetrics(reg).Middleware)
		router.Handle(cfg.Observability.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.Spec)
	})
	router.Handle("/swagger/*", swagger.Handler())

	var validator *middleware.RequestValidator
	if cfg.OpenAPI.ValidateRequests {
		var err error
		validator, err = middleware.NewRequestValidator(context.Background(), api.Spec)
		if err != nil {
			return err
		}
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Get("/ping", healthHandler.Ping)

		r.Group(func(rr chi.Router) {
			if validator != nil {
				rr.Use(validator.Middleware)
			}
			mountResource(rr, "/org-units", handlers.OrgUnits)
			mountResource(rr, "/workers", handlers.Workers)
			mountResource(rr, "/job-positions", handlers.Positions)
			mountResource(rr, "/compensation-bands", handlers.Bands)
		})
	})

	return nil
}

func mountResource(r chi.Router, path string, h resourceHandler) {
	r.Route(path, func(sr chi.Router) {
		sr.Get("/", h.List)
		sr.Post("/", h.Create)
		sr.Post("/table", h.Table)
		sr.Get("/{id}", h.Get)
		sr.Put("/{id}", h.Update)
		sr.Delete("/{id}", h.Delete)
	})
}
