// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/metrics"
)

// unmatchedPath labels requests that hit no route, so unknown URLs cannot
// grow label cardinality.
const unmatchedPath = "unmatched"

// probePaths are scraped or polled by infrastructure and kept out of the
// HTTP metrics.
var probePaths = map[string]bool{
	"/metrics": true,
	"/live":    true,
	"/ready":   true,
}

// Metrics returns a Gin middleware that records request count, duration
// and in-flight requests, labelled by route template rather than raw path.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if probePaths[c.FullPath()] {
			c.Next()
			return
		}

		timer := metrics.NewTimer()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedPath
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		timer.ObserveDuration(metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path))
	}
}
