// Package observability provides Prometheus metrics for the robotpath
// service, exposed via the /metrics endpoint.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "robotpath"
	metricsSubsystem = "enter_path"
)

// Metrics holds all Prometheus collectors for the enter-path endpoint.
// Initialize once at startup via NewMetrics().
type Metrics struct {
	// RequestsTotal counts requests by outcome (success, validation_error,
	// engine_error, persistence_error).
	RequestsTotal *prometheus.CounterVec

	// CommandsPerRequest is a histogram of command-list length.
	CommandsPerRequest prometheus.Histogram

	// ResultCells is a histogram of the computed unique-cell count.
	ResultCells prometheus.Histogram

	// ComputeDurationSeconds measures wall-clock time of engine.Compute,
	// separate from total request handling time.
	ComputeDurationSeconds prometheus.Histogram
}

// NewMetrics registers and returns a fresh Metrics instance. Call once per
// process; a second call against the default registry panics on duplicate
// registration, matching promauto's behavior.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "requests_total",
				Help:      "Total enter-path requests by outcome",
			},
			[]string{"outcome"},
		),
		CommandsPerRequest: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "commands_per_request",
				Help:      "Number of commands in each request",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		ResultCells: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "result_cells",
				Help:      "Computed unique lattice-cell count per request",
				Buckets:   prometheus.ExponentialBuckets(1, 8, 12),
			},
		),
		ComputeDurationSeconds: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "compute_duration_seconds",
				Help:      "Time spent in engine.Compute",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}
