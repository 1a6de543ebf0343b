package session

import "time"

const (
	LogPrefixDo    = "internal.session.Do"
	LogPrefixReset = "internal.session.Reset"

	DefaultTTL         = 24 * time.Hour
	DefaultMaxSessions = 10000
)
