package middleware

import (
	"strconv"
	"time"

	"nagrik_seva/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records per-route request durations. The route template, not the
// raw path, is the label so cardinality stays bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
