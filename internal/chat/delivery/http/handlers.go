package http

import (
	"github.com/gin-gonic/gin"

	"reddit-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Routes one message through the caller's conversation: list posts, summarize a thread, follow-up questions, subreddit overview Q&A or general Reddit questions. Corrective replies answer 200.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200  {object} response.ChatResp
// @Failure     400  {object} response.ChatResp "Invalid input"
// @Failure     500  {object} response.ChatResp "Reddit or LLM failure"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "%s: rejected request: %v", LogPrefixChat, err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Reply(c, output.Response)
}

// Overview godoc
// @Summary     Overview a subreddit
// @Description Loads a subreddit's posts with their comments and summarizes the main themes. Afterwards every chat message is answered from these posts until "new session".
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body overviewReq true "Subreddit, number of posts (default 20) and listing (new, hot, top; default new)"
// @Success     200  {object} response.ChatResp
// @Failure     400  {object} response.ChatResp "Invalid input"
// @Failure     500  {object} response.ChatResp "Reddit or LLM failure"
// @Router      /subreddit_overview [POST]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processOverviewReq(c)
	if err != nil {
		h.l.Warnf(ctx, "%s: rejected request: %v", LogPrefixOverview, err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Overview(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Reply(c, output.Response)
}

// SummarizePost godoc
// @Summary     Summarize an overview post
// @Description Summarizes the post with the given title from the caller's last subreddit overview.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body summarizePostReq true "Post title"
// @Success     200  {object} response.ChatResp
// @Failure     400  {object} response.ChatResp "Invalid input"
// @Failure     500  {object} response.ChatResp "LLM failure"
// @Router      /summarize_post [POST]
func (h *handler) SummarizePost(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSummarizePostReq(c)
	if err != nil {
		h.l.Warnf(ctx, "%s: rejected request: %v", LogPrefixSummarizePost, err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.SummarizePost(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Reply(c, output.Response)
}
