package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"accident-analytics-api/metrics"
)

// CountRequests records every request by route and status.
func CountRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
