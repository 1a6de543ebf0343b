package summary

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"reddit-assistant/internal/content"
	"reddit-assistant/internal/model"
	"reddit-assistant/pkg/cache"
	pkgErrors "reddit-assistant/pkg/errors"
)

// Mock logger for testing
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

type llmCall struct {
	system    string
	user      string
	maxTokens int
}

// mockLLM answers with a numbered reply per call
type mockLLM struct {
	calls []llmCall
	err   error
}

func (m *mockLLM) Generate(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	m.calls = append(m.calls, llmCall{system: system, user: user, maxTokens: maxTokens})
	if m.err != nil {
		return "", m.err
	}
	return fmt.Sprintf("reply %d", len(m.calls)), nil
}

type mockFetcher struct {
	threads   map[string]content.Thread
	err       error
	callCount int
	lastSort  model.CommentSort
}

func (m *mockFetcher) FetchThread(ctx context.Context, url string, sort model.CommentSort) (content.Thread, error) {
	m.callCount++
	m.lastSort = sort
	if m.err != nil {
		return content.Thread{}, m.err
	}
	return m.threads[url], nil
}

func newTestSummarizer(t *testing.T, fetcher *mockFetcher, llm *mockLLM) *Summarizer {
	t.Helper()
	c, err := cache.New[any](cache.DefaultCapacity)
	if err != nil {
		t.Fatalf("cache.New() error = %v", err)
	}
	return New(fetcher, llm, c, &mockLogger{})
}

func TestSummarizePostAndComments_Format(t *testing.T) {
	fetcher := &mockFetcher{threads: map[string]content.Thread{
		"u1": {Title: "Go 2", Content: "generics?", Comments: []string{"yes", "no", "maybe"}},
	}}
	llm := &mockLLM{}
	s := newTestSummarizer(t, fetcher, llm)

	rec, err := s.SummarizePostAndComments(context.Background(), "u1", model.SortTop)
	if err != nil {
		t.Fatalf("SummarizePostAndComments() error = %v", err)
	}

	wantSummary := "Post Summary:\nreply 1\n\nComment Summary (3 comments):\nreply 2\n\nWould you like to know anything else about this post or its comments?"
	if rec.Summary != wantSummary {
		t.Errorf("Summary = %q, want %q", rec.Summary, wantSummary)
	}
	if rec.Sort != model.SortTop || rec.CommentCount != 3 || rec.PostTitle != "Go 2" || rec.PostContent != "generics?" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if fetcher.lastSort != model.SortTop {
		t.Errorf("fetch sort = %q, want top", fetcher.lastSort)
	}

	if len(llm.calls) != 2 {
		t.Fatalf("expected 2 LLM calls, got %d", len(llm.calls))
	}
	post, comments := llm.calls[0], llm.calls[1]
	if post.system != PromptPostSummary || post.user != "Title: Go 2\n\nContent: generics?" || post.maxTokens != 150 {
		t.Errorf("unexpected post summary call: %+v", post)
	}
	if comments.system != "Summarize the following 3 Reddit comments (sorted by top):" ||
		comments.user != "yes no maybe" || comments.maxTokens != 300 {
		t.Errorf("unexpected comment summary call: %+v", comments)
	}
}

func TestSummarizePostAndComments_Idempotent(t *testing.T) {
	fetcher := &mockFetcher{threads: map[string]content.Thread{
		"u1": {Title: "T", Content: "C", Comments: []string{"a", "b"}},
	}}
	llm := &mockLLM{}
	s := newTestSummarizer(t, fetcher, llm)

	first, err := s.SummarizePostAndComments(context.Background(), "u1", model.SortBest)
	if err != nil {
		t.Fatalf("first call error = %v", err)
	}
	second, err := s.SummarizePostAndComments(context.Background(), "u1", model.SortBest)
	if err != nil {
		t.Fatalf("second call error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("records differ:\n%+v\n%+v", first, second)
	}
	if len(llm.calls) != 2 {
		t.Errorf("expected exactly one LLM call pair, got %d calls", len(llm.calls))
	}
	if fetcher.callCount != 1 {
		t.Errorf("expected 1 fetch, got %d", fetcher.callCount)
	}

	// A different sort is a distinct record.
	if _, err := s.SummarizePostAndComments(context.Background(), "u1", model.SortNew); err != nil {
		t.Fatalf("third call error = %v", err)
	}
	if len(llm.calls) != 4 {
		t.Errorf("expected a second LLM call pair for another sort, got %d calls", len(llm.calls))
	}
}

func TestSummarizePostAndComments_NoComments(t *testing.T) {
	fetcher := &mockFetcher{threads: map[string]content.Thread{
		"u1": {Title: "Quiet", Content: "nobody here"},
	}}
	llm := &mockLLM{}
	s := newTestSummarizer(t, fetcher, llm)

	rec, err := s.SummarizePostAndComments(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("SummarizePostAndComments() error = %v", err)
	}

	if rec.CommentCount != 0 || rec.Sort != model.SortBest {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Summary != "Post Summary:\nreply 1\n\nThis post has no comments yet." {
		t.Errorf("Summary = %q", rec.Summary)
	}
	if len(llm.calls) != 1 {
		t.Errorf("expected a single LLM call, got %d", len(llm.calls))
	}
}

func TestSummarizePostAndComments_Errors(t *testing.T) {
	providerErr := pkgErrors.NewProviderError("op", errors.New("not found"))
	s := newTestSummarizer(t, &mockFetcher{err: providerErr}, &mockLLM{})
	if _, err := s.SummarizePostAndComments(context.Background(), "u1", model.SortBest); pkgErrors.KindOf(err) != pkgErrors.KindProvider {
		t.Errorf("expected provider error, got %v", err)
	}

	fetcher := &mockFetcher{threads: map[string]content.Thread{"u1": {Title: "T", Comments: []string{"a"}}}}
	llm := &mockLLM{err: errors.New("quota")}
	s = newTestSummarizer(t, fetcher, llm)
	if _, err := s.SummarizePostAndComments(context.Background(), "u1", model.SortBest); pkgErrors.KindOf(err) != pkgErrors.KindLLM {
		t.Errorf("expected LLM error, got %v", err)
	}

	// Failures are not cached.
	llm.err = nil
	if _, err := s.SummarizePostAndComments(context.Background(), "u1", model.SortBest); err != nil {
		t.Errorf("retry after failure error = %v", err)
	}
}

func TestSummarizeByTitle(t *testing.T) {
	overview := []model.OverviewPost{
		{Post: model.Post{Title: "Hello World"}, PostDetails: model.PostDetails{Content: "hi", Comments: []string{"x", "y"}}},
		{Post: model.Post{Title: "Empty"}, PostDetails: model.PostDetails{Content: "none"}},
	}

	t.Run("case-insensitive match", func(t *testing.T) {
		llm := &mockLLM{}
		s := newTestSummarizer(t, &mockFetcher{}, llm)

		got, err := s.SummarizeByTitle(context.Background(), overview, "hello world")
		if err != nil {
			t.Fatalf("SummarizeByTitle() error = %v", err)
		}
		want := "Post Summary:\nreply 1\n\nComment Summary (2 comments):\nreply 2"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		if llm.calls[1].system != "Summarize the following 2 Reddit comments:" {
			t.Errorf("unexpected comment prompt %q", llm.calls[1].system)
		}
	})

	t.Run("no comments", func(t *testing.T) {
		llm := &mockLLM{}
		s := newTestSummarizer(t, &mockFetcher{}, llm)

		got, err := s.SummarizeByTitle(context.Background(), overview, "EMPTY")
		if err != nil {
			t.Fatalf("SummarizeByTitle() error = %v", err)
		}
		if got != "Post Summary:\nreply 1\n\nThis post has no comments yet." || len(llm.calls) != 1 {
			t.Errorf("got %q after %d calls", got, len(llm.calls))
		}
	})

	t.Run("not found", func(t *testing.T) {
		llm := &mockLLM{}
		s := newTestSummarizer(t, &mockFetcher{}, llm)

		_, err := s.SummarizeByTitle(context.Background(), overview, "missing")
		if pkgErrors.KindOf(err) != pkgErrors.KindIntentUnresolved {
			t.Fatalf("expected unresolved intent, got %v", err)
		}
		if err.Error() != "No post found with the title 'missing'. Please check the title and try again." {
			t.Errorf("message = %q", err.Error())
		}
		if len(llm.calls) != 0 {
			t.Errorf("expected no LLM calls, got %d", len(llm.calls))
		}
	})
}
