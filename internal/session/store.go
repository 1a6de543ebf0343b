// Package session keeps per-client conversational state in memory.
// Sessions expire after a period of inactivity, and turns for one session
// run one at a time.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"reddit-assistant/internal/model"
	pkgLog "reddit-assistant/pkg/log"
)

// Store is a bounded in-memory session store with idle expiry.
type Store struct {
	mu      sync.Mutex
	entries *expirable.LRU[string, *entry]
	l       pkgLog.Logger
	now     func() time.Time
}

// New creates a Store.
func New(l pkgLog.Logger, cfg Config) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	return &Store{
		entries: expirable.NewLRU[string, *entry](cfg.MaxSessions, nil, cfg.TTL),
		l:       l,
		now:     time.Now,
	}
}

// acquire returns the entry for id, creating it if missing, and re-adds it so its TTL restarts.
func (s *Store) acquire(ctx context.Context, id string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries.Get(id)
	if !ok {
		s.l.Debugf(ctx, "%s: new session %s", LogPrefixDo, id)
		e = &entry{sess: model.NewSession(id, s.now())}
	}
	s.entries.Add(id, e)
	return e
}

// Do runs fn with exclusive access to the session identified by id, creating it on first use.
func (s *Store) Do(ctx context.Context, id string, fn func(sess *model.Session) error) error {
	e := s.acquire(ctx, id)

	e.mu.Lock()
	defer e.mu.Unlock()

	err := fn(e.sess)
	e.sess.UpdatedAt = s.now()
	return err
}

// Reset clears the session's state. It reports whether the session existed.
func (s *Store) Reset(ctx context.Context, id string) bool {
	s.mu.Lock()
	e, ok := s.entries.Peek(id)
	s.mu.Unlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.sess.Clear()
	e.sess.UpdatedAt = s.now()
	s.l.Infof(ctx, "%s: cleared session %s", LogPrefixReset, id)
	return true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.entries.Len()
}
