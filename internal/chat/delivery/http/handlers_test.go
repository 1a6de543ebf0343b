package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"reddit-assistant/internal/chat"
	"reddit-assistant/internal/middleware"
	"reddit-assistant/internal/model"
	pkgErrors "reddit-assistant/pkg/errors"
	"reddit-assistant/pkg/response"
)

// mockLogger is a no-op implementation of pkgLog.Logger.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	err       error
	scopes    []model.Scope
	chats     []chat.ChatInput
	overviews []chat.OverviewInput
	titles    []chat.SummarizePostInput
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ReplyOutput, error) {
	m.scopes = append(m.scopes, sc)
	m.chats = append(m.chats, input)
	if m.err != nil {
		return chat.ReplyOutput{}, m.err
	}
	return chat.ReplyOutput{Response: "reply to " + input.Message}, nil
}

func (m *mockUseCase) Overview(ctx context.Context, sc model.Scope, input chat.OverviewInput) (chat.ReplyOutput, error) {
	m.overviews = append(m.overviews, input)
	if m.err != nil {
		return chat.ReplyOutput{}, m.err
	}
	return chat.ReplyOutput{Response: "overview of " + input.Subreddit}, nil
}

func (m *mockUseCase) SummarizePost(ctx context.Context, sc model.Scope, input chat.SummarizePostInput) (chat.ReplyOutput, error) {
	m.titles = append(m.titles, input)
	if m.err != nil {
		return chat.ReplyOutput{}, m.err
	}
	return chat.ReplyOutput{Response: "summary of " + input.PostTitle}, nil
}

func (m *mockUseCase) Classify(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ClassifyOutput, error) {
	return chat.ClassifyOutput{}, nil
}

func (m *mockUseCase) Reset(ctx context.Context, sc model.Scope) (bool, error) {
	return true, nil
}

func newTestEngine(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, middleware.Config{RateLimitPerMin: 60000})
	RegisterRoutes(r.Group(""), New(&mockLogger{}, uc), mw)
	return r
}

func do(r http.Handler, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp response.ChatResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return resp.Response
}

func TestChat(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestEngine(uc)

	w := do(r, "/chat", `{"message":"hi"}`)
	if w.Code != http.StatusOK || decode(t, w) != "reply to hi" {
		t.Fatalf("got %d %s", w.Code, w.Body.String())
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != middleware.DefaultCookieName {
		t.Fatalf("expected a session cookie, got %+v", cookies)
	}

	do(r, "/chat", `{"message":"again"}`, cookies[0])
	if len(uc.scopes) != 2 || uc.scopes[0] != uc.scopes[1] {
		t.Errorf("the cookie must keep the session, got %+v", uc.scopes)
	}
}

func TestChat_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"not json", `hello`, "Invalid input. Please provide a valid JSON payload."},
		{"missing message", `{}`, "Invalid input. 'message' field must be a non-empty string."},
		{"empty message", `{"message":""}`, "Invalid input. 'message' field must be a non-empty string."},
		{"number message", `{"message":5}`, "Invalid input. 'message' field must be a non-empty string."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := do(newTestEngine(uc), "/chat", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("code = %d, want 400", w.Code)
			}
			if got := decode(t, w); got != tt.want {
				t.Errorf("response = %q, want %q", got, tt.want)
			}
			if len(uc.chats) != 0 {
				t.Error("use case must not be called")
			}
		})
	}
}

func TestChat_WhitespaceMessageIsRouted(t *testing.T) {
	uc := &mockUseCase{}

	w := do(newTestEngine(uc), "/chat", `{"message":"   "}`)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}
	if len(uc.chats) != 1 || uc.chats[0].Message != "   " {
		t.Errorf("use case calls = %+v", uc.chats)
	}
}

func TestChat_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"unresolved", pkgErrors.NewIntentUnresolved("Invalid post number. Please choose a number between 1 and 5."),
			http.StatusOK, "Invalid post number. Please choose a number between 1 and 5."},
		{"provider", pkgErrors.NewProviderError("op", errors.New("subreddit not found")),
			http.StatusInternalServerError, "I'm sorry, but I encountered an error: subreddit not found"},
		{"llm", pkgErrors.NewLLMError("op", errors.New("rate limited")),
			http.StatusInternalServerError, "I'm sorry, but I encountered an error: rate limited"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newTestEngine(&mockUseCase{err: tt.err}), "/chat", `{"message":"hi"}`)
			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
			if got := decode(t, w); got != tt.wantText {
				t.Errorf("response = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestOverview(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestEngine(uc)

	w := do(r, "/subreddit_overview", `{"subreddit":"golang","num_posts":5,"post_type":"hot"}`)
	if w.Code != http.StatusOK || decode(t, w) != "overview of golang" {
		t.Fatalf("got %d %s", w.Code, w.Body.String())
	}
	want := chat.OverviewInput{Subreddit: "golang", NumPosts: 5, PostType: "hot"}
	if uc.overviews[0] != want {
		t.Errorf("input = %+v, want %+v", uc.overviews[0], want)
	}

	for _, body := range []string{`{"num_posts":5}`, `{"subreddit":"go","num_posts":"five"}`} {
		w = do(r, "/subreddit_overview", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: code = %d, want 400", body, w.Code)
		}
	}
	if len(uc.overviews) != 1 {
		t.Errorf("invalid requests reached the use case")
	}
}

func TestSummarizePost(t *testing.T) {
	uc := &mockUseCase{}
	w := do(newTestEngine(uc), "/summarize_post", `{"post_title":"Hello"}`)

	if w.Code != http.StatusOK || decode(t, w) != "summary of Hello" {
		t.Fatalf("got %d %s", w.Code, w.Body.String())
	}
}
