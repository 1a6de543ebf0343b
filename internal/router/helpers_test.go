package router

import (
	"context"
	"errors"
	"fmt"
	"sync"

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

type listCall struct {
	Subreddit string
	Limit     int
	Mode      model.ListingMode
}

type mockFetcher struct {
	mu        sync.Mutex
	posts     []model.Post
	listErr   error
	manyErr   error
	listCalls []listCall
	manyCalls int
}

func (m *mockFetcher) ListPosts(ctx context.Context, subreddit string, limit int, mode model.ListingMode) ([]model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls = append(m.listCalls, listCall{Subreddit: subreddit, Limit: limit, Mode: mode})
	if m.listErr != nil {
		return nil, m.listErr
	}
	if limit < len(m.posts) {
		return m.posts[:limit], nil
	}
	return m.posts, nil
}

func (m *mockFetcher) FetchMany(ctx context.Context, posts []model.Post) ([]model.OverviewPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.manyCalls++
	if m.manyErr != nil {
		return nil, m.manyErr
	}
	out := make([]model.OverviewPost, len(posts))
	for i, p := range posts {
		out[i] = model.OverviewPost{
			Post:        p,
			PostDetails: model.PostDetails{Content: "body of " + p.Title, Comments: []string{"c1", "c2"}},
		}
	}
	return out, nil
}

type summarizeCall struct {
	URL  string
	Sort model.CommentSort
}

type mockSummarizer struct {
	calls      []summarizeCall
	titleCalls []string
	err        error
}

func (m *mockSummarizer) SummarizePostAndComments(ctx context.Context, url string, sort model.CommentSort) (model.SummaryRecord, error) {
	m.calls = append(m.calls, summarizeCall{URL: url, Sort: sort})
	if m.err != nil {
		return model.SummaryRecord{}, m.err
	}
	return model.SummaryRecord{
		Summary:      "summary of " + url,
		Sort:         sort,
		PostTitle:    "title of " + url,
		PostContent:  "content of " + url,
		Comments:     []string{"first", "second"},
		CommentCount: 2,
	}, nil
}

func (m *mockSummarizer) SummarizeByTitle(ctx context.Context, overview []model.OverviewPost, title string) (string, error) {
	m.titleCalls = append(m.titleCalls, title)
	if m.err != nil {
		return "", m.err
	}
	return "title summary of " + title, nil
}

type llmCall struct {
	System    string
	User      string
	MaxTokens int
}

type mockLLM struct {
	calls []llmCall
	err   error
}

func (m *mockLLM) Generate(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	m.calls = append(m.calls, llmCall{System: system, User: user, MaxTokens: maxTokens})
	if m.err != nil {
		return "", m.err
	}
	return fmt.Sprintf("reply %d", len(m.calls)), nil
}

var errBoom = errors.New("boom")

func newTestRouter() (*Router, *mockFetcher, *mockSummarizer, *mockLLM) {
	f := &mockFetcher{}
	s := &mockSummarizer{}
	llm := &mockLLM{}
	return New(f, s, llm, &mockLogger{}, Config{DefaultPosts: 10, MaxPosts: 25}), f, s, llm
}

func testPosts(n int) []model.Post {
	posts := make([]model.Post, n)
	for i := range posts {
		posts[i] = model.Post{
			Title: fmt.Sprintf("Post %d", i+1),
			Score: (i + 1) * 10,
			URL:   fmt.Sprintf("https://www.reddit.com/r/test/comments/p%d/", i+1),
		}
	}
	return posts
}
