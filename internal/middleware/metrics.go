package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records request rate, errors and duration into the provided
// registry. The collectors are built per call rather than held in package
// globals, so two routers in one process (the server and a test) never
// collide.
func Metrics(reg *prometheus.Registry) gin.HandlerFunc {
	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests (Rate)",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestErrorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_errors_total",
			Help: "Total number of HTTP request errors",
		},
		[]string{"method", "path", "status", "error_type"},
	)

	httpRequestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds (Duration)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	reg.MustRegister(httpRequestsTotal, httpRequestErrorsTotal, httpRequestDuration)

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		statusStr := strconv.Itoa(status)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		duration := time.Since(start).Seconds()

		httpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()

		if status >= 400 && status < 500 {
			httpRequestErrorsTotal.WithLabelValues(method, path, statusStr, "client").Inc()
		} else if status >= 500 {
			httpRequestErrorsTotal.WithLabelValues(method, path, statusStr, "server").Inc()
		}

		httpRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration)
	}
}
