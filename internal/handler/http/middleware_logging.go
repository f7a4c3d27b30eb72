package http

import (
	"net/http"
	"time"

	"github.com/forknroll/go-boilerplate-base/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Request(logger.RequestInfo{
			Method:     r.Method,
			URL:        r.RequestURI,
			StatusCode: lw.Status(),
			Duration:   time.Since(start),
			Size:       lw.size,
		})
	})
}
