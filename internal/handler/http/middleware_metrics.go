package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// notFoundRoute labels requests that matched no route, keeping the path
// label cardinality bounded.
const notFoundRoute = "not_found"

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.metrics.RequestsInFlight.Inc()
		defer h.metrics.RequestsInFlight.Dec()

		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		h.metrics.ObserveRequest(r.Method, routePattern(r), mw.Status(), time.Since(start))
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return notFoundRoute
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return notFoundRoute
}
