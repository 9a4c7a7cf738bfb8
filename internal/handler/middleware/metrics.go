package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPMetrics struct {
	durations *prometheus.HistogramVec
	requests  *prometheus.CounterVec
	active    prometheus.Gauge
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	f := promauto.With(reg)
	return &HTTPMetrics{
		durations: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pricing_stub",
			Name:      "http_durations_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "method", "status"}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pricing_stub",
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"path", "method", "status"}),
		active: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "pricing_stub",
			Name:      "http_active_requests",
			Help:      "HTTP requests in flight.",
		}),
	}
}

// Middleware labels by route template so path parameters do not explode the
// series count. Unmatched routes share one label.
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.active.Inc()
		defer m.active.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.requests.WithLabelValues(path, c.Request.Method, status).Inc()
		m.durations.WithLabelValues(path, c.Request.Method, status).Observe(time.Since(start).Seconds())
	}
}

func MetricsHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
