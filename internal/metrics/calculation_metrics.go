// Package metrics defines calculation-specific metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Calculation counter vectors
var (
	CalculationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calculations_total",
		Help:      "Total number of calculations by operation, source and status",
	}, []string{"operation", "source", "status"})
)

// Calculation histogram vectors
var (
	CalculationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "calculation_duration_seconds",
		Help:      "Duration of calculations in seconds",
		Buckets:   []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
	}, []string{"operation"})

	BookmakerMargin = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "bookmaker_margin_percent",
		Help:      "Bookmaker margins computed from submitted markets",
		Buckets:   []float64{0, 2, 4, 6, 8, 10, 15, 20, 30, 50},
	})
)

// RecordCalculation records a calculation outcome.
// status should be one of: "success", "invalid_type", "out_of_range", "unknown_operation"
func RecordCalculation(operation, source, status string, durationSeconds float64) {
	CalculationsTotal.WithLabelValues(operation, source, status).Inc()
	CalculationDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// RecordBookmakerMargin records a computed market margin.
func RecordBookmakerMargin(marginPercent float64) {
	BookmakerMargin.Observe(marginPercent)
}
