package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reddit-assistant/internal/model"
)

// Session resolves the caller's session id from its cookie, issuing a new one
// when the cookie is missing or malformed, and stores the scope on the context.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(m.cookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cookieName, id, m.cookieMaxAge, "/", "", m.secureCookie, true)

		c.Set(scopeKey, model.Scope{SessionID: id})
		c.Next()
	}
}

// GetScope returns the scope set by Session.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
