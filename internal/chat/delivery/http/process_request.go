package http

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"reddit-assistant/internal/chat"
	"reddit-assistant/internal/middleware"
	"reddit-assistant/internal/model"
)

// bindJSON decodes the body into req. A field of the wrong type reports
// typeErr; anything else that fails to decode is an invalid payload.
func bindJSON(c *gin.Context, req any, typeErr error) error {
	if err := c.ShouldBindJSON(req); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) {
			return typeErr
		}
		return chat.ErrInvalidPayload
	}
	return nil
}

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, model.Scope, error) {
	var req chatReq
	if err := bindJSON(c, &req, chat.ErrInvalidMessage); err != nil {
		return req, model.Scope{}, err
	}
	if err := req.validate(); err != nil {
		return req, model.Scope{}, err
	}
	sc, err := h.scope(c)
	return req, sc, err
}

// processOverviewReq binds and validates the overview request body.
func (h *handler) processOverviewReq(c *gin.Context) (overviewReq, model.Scope, error) {
	var req overviewReq
	if err := bindJSON(c, &req, chat.ErrInvalidPayload); err != nil {
		return req, model.Scope{}, err
	}
	if err := req.validate(); err != nil {
		return req, model.Scope{}, err
	}
	sc, err := h.scope(c)
	return req, sc, err
}

// processSummarizePostReq binds and validates the summarize-post request body.
func (h *handler) processSummarizePostReq(c *gin.Context) (summarizePostReq, model.Scope, error) {
	var req summarizePostReq
	if err := bindJSON(c, &req, chat.ErrInvalidPayload); err != nil {
		return req, model.Scope{}, err
	}
	if err := req.validate(); err != nil {
		return req, model.Scope{}, err
	}
	sc, err := h.scope(c)
	return req, sc, err
}

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, chat.ErrMissingScope
	}
	return sc, nil
}
