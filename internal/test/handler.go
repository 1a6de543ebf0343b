package test

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"reddit-assistant/internal/chat"
	"reddit-assistant/internal/middleware"
	pkgLog "reddit-assistant/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// HandleClassify reports the intent the router would pick for a message
// @Summary Classify a message
// @Description Returns the rule the conversation router would run for this session and the fields extracted from the message, without running it
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Message"
// @Success 200 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	sc, _ := middleware.GetScope(c)
	out, err := h.uc.Classify(ctx, sc, chat.ChatInput{Message: req.Message})
	if err != nil {
		h.l.Errorf(ctx, "internal.test.HandleClassify: %v", err)
		c.JSON(http.StatusBadRequest, ClassifyResponse{
			Success:   false,
			Message:   req.Message,
			SessionID: sc.SessionID,
			Error:     err.Error(),
		})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleClassify: session=%s text=%q intent=%s", sc.SessionID, req.Message, out.Intent)

	c.JSON(http.StatusOK, ClassifyResponse{
		Success:    true,
		Intent:     out.Intent,
		Message:    req.Message,
		SessionID:  sc.SessionID,
		Subreddit:  out.Subreddit,
		Number:     out.Number,
		URL:        out.URL,
		Sort:       string(out.Sort),
		Depth:      out.Depth,
		HasPosts:   out.HasPosts,
		InOverview: out.InOverview,
		Summarized: out.Summarized,
	})
}

// HandleResetSession clears the caller's conversation
// @Summary Reset session
// @Description Clear the conversation state of the caller's session
// @Tags test
// @Produce json
// @Success 200 {object} ResetSessionResponse
// @Router /test/reset [post]
func (h *handler) HandleResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := middleware.GetScope(c)
	existed, err := h.uc.Reset(ctx, sc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	msg := fmt.Sprintf("Session %s cleared", sc.SessionID)
	if !existed {
		msg = fmt.Sprintf("Session %s had no state", sc.SessionID)
	}
	h.l.Infof(ctx, "internal.test.HandleResetSession: %s", msg)

	c.JSON(http.StatusOK, ResetSessionResponse{
		Success:   true,
		Message:   msg,
		SessionID: sc.SessionID,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
