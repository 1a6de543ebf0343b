package session

import (
	"sync"
	"time"

	"reddit-assistant/internal/model"
)

// Config bounds the store.
type Config struct {
	TTL         time.Duration
	MaxSessions int
}

// entry serializes access to one session.
type entry struct {
	mu   sync.Mutex
	sess *model.Session
}
