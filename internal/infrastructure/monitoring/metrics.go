package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger *zap.Logger

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business metrics
	plansGeneratedTotal *prometheus.CounterVec
	planGenerationTime  prometheus.Histogram
	eligiblePoolSize    prometheus.Histogram
	shoppingListWeeks   prometheus.Histogram

	// System metrics
	cacheOperations *prometheus.CounterVec
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger *zap.Logger) *MetricsCollector {
	return &MetricsCollector{
		logger: logger,

		// HTTP metrics
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),

		// Business metrics
		plansGeneratedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nutrition_plans_generated_total",
				Help: "Total number of nutrition plan generation attempts",
			},
			[]string{"status"},
		),
		planGenerationTime: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nutrition_plan_generation_duration_seconds",
				Help:    "End-to-end plan generation duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			},
		),
		eligiblePoolSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nutrition_plan_eligible_recipes",
				Help:    "Size of the eligible recipe pool per generation run",
				Buckets: prometheus.LinearBuckets(0, 10, 10),
			},
		),
		shoppingListWeeks: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nutrition_plan_shopping_weeks",
				Help:    "Number of weekly shopping lists per plan",
				Buckets: prometheus.LinearBuckets(1, 1, 8),
			},
		),

		// System metrics
		cacheOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_operations_total",
				Help: "Total number of cache operations",
			},
			[]string{"operation", "status"},
		),
	}
}

// RecordHTTPRequest records one served HTTP request.
func (m *MetricsCollector) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordPlanGenerated records the outcome of a generation run.
func (m *MetricsCollector) RecordPlanGenerated(status string, duration time.Duration, eligibleRecipes, shoppingWeeks int) {
	m.plansGeneratedTotal.WithLabelValues(status).Inc()
	if status == "success" {
		m.planGenerationTime.Observe(duration.Seconds())
		m.eligiblePoolSize.Observe(float64(eligibleRecipes))
		m.shoppingListWeeks.Observe(float64(shoppingWeeks))
	}
}

// RecordCacheOperation records a cache operation outcome.
func (m *MetricsCollector) RecordCacheOperation(operation, status string) {
	m.cacheOperations.WithLabelValues(operation, status).Inc()
}

// Handler returns the Prometheus scrape handler.
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.Handler()
}
