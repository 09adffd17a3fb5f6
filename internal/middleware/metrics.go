package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/estate_commission/internal/observability/metrics"
)

// MetricsMiddleware records request latency labelled by route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
