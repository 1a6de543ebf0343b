package test

import (
	"github.com/gin-gonic/gin"

	"reddit-assistant/internal/middleware"
)

// RegisterRoutes maps the debug endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/health", h.HandleHealthCheck)

	session := rg.Group("", mw.Session())
	session.POST("/classify", h.HandleClassify)
	session.POST("/reset", h.HandleResetSession)
}
