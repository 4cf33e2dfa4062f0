package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	GenerationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_generation_requests_total",
			Help: "Provider calls by content type and outcome",
		},
		[]string{"type", "outcome"},
	)

	GenerationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_generation_duration_seconds",
			Help:    "Latency of provider calls",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"type"},
	)

	TrackedEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_tracked_events_total",
			Help: "Study sessions tracked by content type",
		},
		[]string{"type"},
	)

	TrackedUsers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_tracked_users",
			Help: "Users with an in-memory analytics record",
		},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			GenerationCounter,
			GenerationDuration,
			TrackedEvents,
			TrackedUsers,
		)
	})
}

// ObserveGeneration 记录一次 provider 调用
func ObserveGeneration(contentType, outcome string, elapsed time.Duration) {
	GenerationCounter.WithLabelValues(contentType, outcome).Inc()
	GenerationDuration.WithLabelValues(contentType).Observe(elapsed.Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
