package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "reddit-assistant/pkg/errors"
	"reddit-assistant/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("expected ErrorCode 0, got %d", resp.ErrorCode)
		}
		dMap, ok := resp.Data.(map[string]interface{})
		if !ok || dMap["foo"] != "bar" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("Reply", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Reply(c, "hello")

		if w.Code != http.StatusOK || w.Body.String() != `{"response":"hello"}` {
			t.Errorf("got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("TooManyRequests", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.TooManyRequests(c)

		if w.Code != http.StatusTooManyRequests || !c.IsAborted() {
			t.Errorf("expected aborted 429, got %d", w.Code)
		}
	})
}

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"input", pkgErrors.NewInputError("bad input"), http.StatusBadRequest, "bad input"},
		{"unresolved", pkgErrors.NewIntentUnresolved("try again"), http.StatusOK, "try again"},
		{"provider", pkgErrors.NewProviderError("op", errors.New("subreddit not found")), http.StatusInternalServerError,
			"I'm sorry, but I encountered an error: subreddit not found"},
		{"llm", pkgErrors.NewLLMError("op", errors.New("quota")), http.StatusInternalServerError,
			"I'm sorry, but I encountered an error: quota"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "I'm sorry, but I encountered an error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			response.Error(c, tt.err)

			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
			var resp response.ChatResp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if resp.Response != tt.wantText {
				t.Errorf("response = %q, want %q", resp.Response, tt.wantText)
			}
		})
	}
}
