package middleware

import "time"

const (
	LogPrefixAccess    = "internal.middleware.AccessLog"
	LogPrefixRateLimit = "internal.middleware.RateLimit"

	HeaderRequestID = "X-Request-ID"

	DefaultCookieName      = "session_id"
	DefaultRateLimitPerMin = 60

	limiterCapacity = 1000
	limiterTTL      = 5 * time.Minute

	scopeKey = "scope"
)
