package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"reddit-assistant/internal/chat"
	"reddit-assistant/internal/middleware"
	"reddit-assistant/internal/model"
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
	chat.UseCase
	resets int
}

func (m *mockUseCase) Classify(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ClassifyOutput, error) {
	n := 2
	return chat.ClassifyOutput{Intent: "SUMMARIZE_THREAD", Number: &n, Sort: model.SortTop}, nil
}

func (m *mockUseCase) Reset(ctx context.Context, sc model.Scope) (bool, error) {
	m.resets++
	return true, nil
}

func newTestEngine(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/test"), New(&mockLogger{}, uc), middleware.New(&mockLogger{}, middleware.Config{}))
	return r
}

func TestHandleClassify(t *testing.T) {
	r := newTestEngine(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test/classify", strings.NewReader(`{"message":"summarize 2 sorted by top"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	var resp ClassifyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !resp.Success || resp.Intent != "SUMMARIZE_THREAD" || resp.Number == nil || *resp.Number != 2 || resp.Sort != "top" {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.SessionID == "" {
		t.Error("session id missing")
	}
}

func TestHandleClassify_BadRequest(t *testing.T) {
	r := newTestEngine(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test/classify", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", w.Code)
	}
}

func TestHandleResetSession(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestEngine(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test/reset", nil))

	if w.Code != http.StatusOK || uc.resets != 1 {
		t.Errorf("code = %d, resets = %d", w.Code, uc.resets)
	}
}

func TestHandleHealthCheck(t *testing.T) {
	r := newTestEngine(&mockUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/health", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
}
