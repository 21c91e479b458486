// Package metrics provides centralized Prometheus metrics registry for bet-brew.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "betbrew"

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// HTTP counter vectors
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of API requests by route, method and status code",
	}, []string{"route", "method", "code"})
	RateLimitedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of API requests rejected by the rate limiter",
	})
)

// HTTP histogram vectors
var (
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of API requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register runtime collectors
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		// Register HTTP metrics
		registry.MustRegister(HTTPRequestsTotal)
		registry.MustRegister(RateLimitedTotal)
		registry.MustRegister(HTTPRequestDuration)

		// Register calculation metrics
		registry.MustRegister(CalculationsTotal)
		registry.MustRegister(CalculationDuration)
		registry.MustRegister(BookmakerMargin)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordHTTPRequest records a served API request.
func RecordHTTPRequest(route, method, code string, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(route, method, code).Inc()
	HTTPRequestDuration.WithLabelValues(route, method).Observe(durationSeconds)
}

// RecordRateLimited records a request rejected by the rate limiter.
func RecordRateLimited() {
	RateLimitedTotal.Inc()
}
