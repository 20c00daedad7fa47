package prometheus

import (
	"time"

	"github.com/freshmarket/storefront/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Upstream catalog API metrics
	CatalogRequestsTotal   prometheus.CounterVec
	CatalogRequestDuration prometheus.HistogramVec

	// Product popularity metrics
	ProductViewsCounter prometheus.CounterVec

	// Search metrics
	SearchesCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Upstream catalog request metrics
	CatalogRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_catalog_requests_total",
			Help: "Total number of requests issued to the catalog API",
		},
		[]string{"resource", "outcome"},
	)

	CatalogRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_catalog_request_duration_seconds",
			Help:    "Duration of catalog API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	// Product popularity metrics
	ProductViewsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_views_total",
			Help: "Total number of product detail views",
		},
		[]string{"slug"},
	)

	// Search metrics
	SearchesCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_searches_total",
			Help: "Total number of search requests",
		},
		[]string{"kind"},
	)
}

// TrackCatalogRequest returns a function that records the duration of a catalog API call
func TrackCatalogRequest(resource string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		CatalogRequestDuration.WithLabelValues(resource).Observe(duration)
	}
}

// RecordCatalogRequest increments the counter for catalog API calls
func RecordCatalogRequest(resource, outcome string) {
	CatalogRequestsTotal.WithLabelValues(resource, outcome).Inc()
}

// RecordProductView increments the counter for product detail views
func RecordProductView(slug string) {
	ProductViewsCounter.WithLabelValues(slug).Inc()
}

// RecordSearch increments the counter for search requests
func RecordSearch(kind string) {
	SearchesCounter.WithLabelValues(kind).Inc()
}
