// Package app wires the catalog and contact services into the single HTTP
// surface served by cmd/wisecars.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/MgDark0/wisecar/internal/catalog"
	"github.com/MgDark0/wisecar/internal/contact"
	"github.com/MgDark0/wisecar/pkg/kit"
)

type Deps struct {
	Cars     catalog.Store
	Contacts contact.Store
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// ContactLimitPerMin caps POST /api/contact per client IP.
	// Zero means the default.
	ContactLimitPerMin int
}

const (
	defaultContactLimitPerMin = 10
	contactLimitWindow        = 60 * time.Second

	readyTimeout = 1 * time.Second
)

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps, httpDeps.Log))

	cars := &catalog.Server{Store: deps.Cars, Log: httpDeps.Log}
	contacts := &contact.Server{Store: deps.Contacts, Log: httpDeps.Log}

	limit := httpDeps.ContactLimitPerMin
	if limit <= 0 {
		limit = defaultContactLimitPerMin
	}
	contactLimiter := kit.NewIPRateLimiter(limit, int(contactLimitWindow.Seconds()))

	r.Route("/api", func(ar chi.Router) {
		ar.Mount("/cars", cars.Routes())
		ar.With(contactLimiter.Middleware).Mount("/contact", contacts.Routes())
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(deps Deps, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := deps.Cars.Ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed: catalog store", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready")
			return
		}

		if err := deps.Contacts.Ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed: contact store", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready")
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
