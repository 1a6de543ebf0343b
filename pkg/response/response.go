package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "reddit-assistant/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Reply sends a conversational reply with status 200.
func Reply(c *gin.Context, text string) {
	c.JSON(http.StatusOK, ChatResp{Response: text})
}

// Error sends a conversational reply for err. Input errors answer 400 and
// unresolved intents 200, both with their own message; anything else
// answers 500 with the error text.
func Error(c *gin.Context, err error) {
	kind := pkgErrors.KindOf(err)
	text := err.Error()
	switch kind {
	case pkgErrors.KindInput, pkgErrors.KindIntentUnresolved:
	default:
		text = fmt.Sprintf(ErrorReplyTemplate, err)
	}
	c.JSON(pkgErrors.HTTPStatus(kind), ChatResp{Response: text})
}

// TooManyRequests sends 429 and aborts the chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   "Too many requests",
	})
}
