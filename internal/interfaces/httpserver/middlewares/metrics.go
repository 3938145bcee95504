package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pagila-agent-api/internal/infrastructure/metrics"
)

// MetricsMiddleware records HTTP request metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}

		// Set by the chat handler once the request body is bound
		model := c.GetString("model")
		if model == "" {
			model = "none"
		}

		metrics.RecordRequest(c.Request.Method, endpoint, status, model, duration)
	}
}
