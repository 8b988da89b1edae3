package middleware

import (
	"time"

	"hotel-admin/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records per-route request counts and latency. Requests that match
// no route are grouped under "unmatched" to keep label cardinality bounded.
func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		reg.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
