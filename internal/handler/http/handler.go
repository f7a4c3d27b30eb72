package http

import (
	"github.com/forknroll/go-boilerplate-base/internal/logger"
	"github.com/forknroll/go-boilerplate-base/internal/metrics"
	"github.com/forknroll/go-boilerplate-base/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	metrics     *metrics.Collector
	gatherer    prometheus.Gatherer
	metricsPath string

	logger *logger.Logger
}

// Option configures a [Handler].
type Option func(*Handler)

// WithMetrics instruments every request with collector and serves gatherer
// in the Prometheus text format at path.
func WithMetrics(collector *metrics.Collector, gatherer prometheus.Gatherer, path string) Option {
	return func(h *Handler) {
		h.metrics = collector
		h.gatherer = gatherer
		h.metricsPath = path
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Bool("metrics", h.metrics != nil).Msg("http handler created")
	return h
}
