// Package metrics provides Prometheus metrics for the label engine.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// GenerationsTotal counts label generations by rendering tier and outcome.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "label_generations_total",
			Help: "Total number of label generations",
		},
		[]string{"method", "success"},
	)

	// GenerationDuration tracks how long one generation call takes.
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "label_generation_duration_seconds",
			Help:    "Label generation duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	// ReadabilityScore observes the advisory readability score distribution.
	ReadabilityScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "label_readability_score",
			Help:    "Readability score of requested labels",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, statusCode).Observe(duration)
	}
}

// RecordGeneration records one generation call.
func RecordGeneration(method string, success bool, duration time.Duration) {
	GenerationsTotal.WithLabelValues(method, strconv.FormatBool(success)).Inc()
	GenerationDuration.Observe(duration.Seconds())
}
