package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIMetrics holds all Prometheus metrics for the API service.
type APIMetrics struct {
	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	OrdersCreated     prometheus.Counter
	ExportsScheduled  prometheus.Counter
	TenantCacheHits   prometheus.Counter
	TenantCacheMisses prometheus.Counter
}

// NewAPIMetrics initializes and registers the Prometheus metrics.
func NewAPIMetrics() *APIMetrics {
	return &APIMetrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "commerce",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "commerce",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "commerce",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created.",
		}),
		ExportsScheduled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "commerce",
			Subsystem: "exports",
			Name:      "scheduled_total",
			Help:      "Total number of export jobs scheduled.",
		}),
		TenantCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "commerce",
			Subsystem: "tenants",
			Name:      "cache_hits_total",
			Help:      "Total number of tenant cache hits.",
		}),
		TenantCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "commerce",
			Subsystem: "tenants",
			Name:      "cache_misses_total",
			Help:      "Total number of tenant cache misses.",
		}),
	}
}

// Middleware records request count and latency per route. The route template
// is used instead of the raw path to keep cardinality bounded.
func (m *APIMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.RequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
