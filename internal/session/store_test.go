package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

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

func TestDo_PersistsStateAcrossCalls(t *testing.T) {
	s := New(&mockLogger{}, Config{})
	ctx := context.Background()

	err := s.Do(ctx, "a", func(sess *model.Session) error {
		sess.SetListing("go", []model.Post{{Title: "x", URL: "u"}})
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []model.Post
	_ = s.Do(ctx, "a", func(sess *model.Session) error {
		got = sess.Posts
		return nil
	})
	if len(got) != 1 || got[0].URL != "u" {
		t.Errorf("state not kept: %+v", got)
	}

	_ = s.Do(ctx, "b", func(sess *model.Session) error {
		if sess.HasPosts() {
			t.Error("sessions must be isolated")
		}
		return nil
	})
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestDo_ReturnsCallbackError(t *testing.T) {
	s := New(&mockLogger{}, Config{})
	want := errors.New("boom")

	if err := s.Do(context.Background(), "a", func(*model.Session) error { return want }); !errors.Is(err, want) {
		t.Errorf("error = %v, want %v", err, want)
	}
}

func TestDo_SerializesPerSession(t *testing.T) {
	s := New(&mockLogger{}, Config{})
	ctx := context.Background()

	var inFlight, maxInFlight int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(ctx, "same", func(*model.Session) error {
				n := atomic.AddInt32(&inFlight, 1)
				for {
					m := atomic.LoadInt32(&maxInFlight)
					if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	if maxInFlight != 1 {
		t.Errorf("max concurrent turns = %d, want 1", maxInFlight)
	}
}

func TestStore_ExpiresIdleSessions(t *testing.T) {
	s := New(&mockLogger{}, Config{TTL: 50 * time.Millisecond})
	ctx := context.Background()

	_ = s.Do(ctx, "a", func(sess *model.Session) error {
		sess.SetListing("go", []model.Post{})
		return nil
	})
	time.Sleep(150 * time.Millisecond)

	_ = s.Do(ctx, "a", func(sess *model.Session) error {
		if sess.HasPosts() {
			t.Error("expired session must start empty")
		}
		return nil
	})
}

func TestStore_EvictsBeyondCapacity(t *testing.T) {
	s := New(&mockLogger{}, Config{MaxSessions: 2})
	ctx := context.Background()
	noop := func(*model.Session) error { return nil }

	_ = s.Do(ctx, "a", noop)
	_ = s.Do(ctx, "b", noop)
	_ = s.Do(ctx, "c", noop)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestReset(t *testing.T) {
	s := New(&mockLogger{}, Config{})
	ctx := context.Background()

	if s.Reset(ctx, "missing") {
		t.Error("Reset of an unknown session must report false")
	}

	_ = s.Do(ctx, "a", func(sess *model.Session) error {
		sess.SetOverview("go", []model.OverviewPost{})
		return nil
	})
	if !s.Reset(ctx, "a") {
		t.Fatal("Reset must report true for a known session")
	}
	_ = s.Do(ctx, "a", func(sess *model.Session) error {
		if sess.HasOverview() {
			t.Error("Reset must clear the overview")
		}
		return nil
	})
}
