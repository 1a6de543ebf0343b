package test

import (
	"github.com/gin-gonic/gin"

	"reddit-assistant/internal/chat"
	pkgLog "reddit-assistant/pkg/log"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleClassify(c *gin.Context)
	HandleResetSession(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
