// Package metrics provides Prometheus metrics collection for the landing
// server.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/forknroll/go-boilerplate-base/internal/env"
)

const namespace = "boilerplate"

// Validation results recorded by ObserveEnvValidation.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Collector holds all Prometheus metrics of the application.
type Collector struct {
	// Request metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Environment metrics
	EnvValidations *prometheus.CounterVec

	// Build metrics
	BuildInfo *prometheus.GaugeVec
}

// NewWithRegistry creates a collector registered with reg.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of requests processed",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),
		EnvValidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "env_validations_total",
				Help:      "Total number of environment validation runs",
			},
			[]string{"side", "result"},
		),
		BuildInfo: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "build_info",
				Help:      "Build information of the running binary, always 1",
			},
			[]string{"version", "date", "commit"},
		),
	}
}

// ObserveRequest records a finished request. path should be the route
// pattern, not the raw URL, to keep cardinality bounded.
func (c *Collector) ObserveRequest(method, path string, status int, duration time.Duration) {
	c.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveEnvValidation records one validation run. It matches the observer
// signature accepted by env.WithObserver.
func (c *Collector) ObserveEnvValidation(side env.Side, err error) {
	result := ResultValid
	if err != nil {
		result = ResultInvalid
	}
	c.EnvValidations.WithLabelValues(side.String(), result).Inc()
}

// SetBuildInfo publishes the build metadata.
func (c *Collector) SetBuildInfo(version, date, commit string) {
	c.BuildInfo.WithLabelValues(version, date, commit).Set(1)
}
