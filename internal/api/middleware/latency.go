package middleware

import (
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// SimulatedLatency 处理前人为等待 d, 用于演示页面的提交中状态; d <= 0 时不等待
func SimulatedLatency(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			c.Next()
		case <-c.Request.Context().Done():
			log.InfoContext(c.Request.Context(), "request canceled during simulated latency",
				"path", c.Request.URL.Path)
			c.Abort()
		}
	}
}
