package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"devflow/pkg/metrics"
)

// Observe logs every request and counts it by route template.
func (m Middleware) Observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := c.Writer.Status()
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(code)).Inc()

		ctx := c.Request.Context()
		latency := time.Since(start)
		if code >= 500 {
			m.l.Warnf(ctx, "middleware.Observe: %s %s %d %s", c.Request.Method, route, code, latency)
			return
		}
		m.l.Debugf(ctx, "middleware.Observe: %s %s %d %s", c.Request.Method, route, code, latency)
	}
}
