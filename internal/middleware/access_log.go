package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request once the handler chain has finished.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.l.Infof(c.Request.Context(), "%s: %s %s %d %s",
			LogPrefixAccess, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
