package content

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"reddit-assistant/pkg/reddit"
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

// mockReddit is a provider with call counters; safe for concurrent use
type mockReddit struct {
	mu          sync.Mutex
	links       []reddit.Link
	listingErr  error
	lastListing reddit.ListingOptions
	submissions map[string]*reddit.Submission
	failURLs    map[string]error
	delay       time.Duration

	listingCalls    int
	submissionCalls int
	inFlight        atomic.Int32
	maxInFlight     atomic.Int32
}

func (m *mockReddit) Listing(ctx context.Context, opts reddit.ListingOptions) ([]reddit.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listingCalls++
	m.lastListing = opts
	if m.listingErr != nil {
		return nil, m.listingErr
	}
	return m.links, nil
}

func (m *mockReddit) Submission(ctx context.Context, threadURL string, sort reddit.CommentSort) (*reddit.Submission, error) {
	n := m.inFlight.Add(1)
	defer m.inFlight.Add(-1)
	for {
		cur := m.maxInFlight.Load()
		if n <= cur || m.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionCalls++
	if err, ok := m.failURLs[threadURL]; ok {
		return nil, err
	}
	sub, ok := m.submissions[threadURL]
	if !ok {
		return nil, fmt.Errorf("%w: %s", reddit.ErrSubmissionNotFound, threadURL)
	}
	out := *sub
	out.Sort = sort
	return &out, nil
}

func submission(title, body string, comments ...string) *reddit.Submission {
	sub := &reddit.Submission{Link: reddit.Link{Title: title, Selftext: body}}
	for _, c := range comments {
		sub.Comments = append(sub.Comments, reddit.Comment{Body: c})
	}
	return sub
}
