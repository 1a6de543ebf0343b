package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "reddit-assistant/pkg/log"
)

// RequestID tags the request context with the caller's X-Request-ID, or a fresh uuid.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(pkgLog.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
