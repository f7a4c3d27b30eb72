package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	// pages
	router.Get("/", h.landingPage)
	router.Get("/static/*", staticFiles())

	// api
	router.Get("/api/env", h.getPublicEnv)
	router.Get("/api/version", h.getServerVersion)
	router.Get("/healthz", h.healthCheck)

	if h.gatherer != nil && h.metricsPath != "" {
		router.Method(http.MethodGet, h.metricsPath, promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{
			// compression is left to withGZip
			DisableCompression: true,
		}))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
