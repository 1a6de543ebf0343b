package http

import (
	"github.com/gin-gonic/gin"

	"reddit-assistant/internal/middleware"
)

// RegisterRoutes maps the conversational endpoints. Every route resolves the
// caller's session and is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit(), mw.Session())
	rg.POST("/chat", h.Chat)
	rg.POST("/subreddit_overview", h.Overview)
	rg.POST("/summarize_post", h.SummarizePost)
}
