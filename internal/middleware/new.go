package middleware

import (
	pkgLog "reddit-assistant/pkg/log"
)

// Config tunes the middleware chain.
type Config struct {
	RateLimitPerMin int
	CookieName      string
	CookieMaxAge    int // seconds
	SecureCookie    bool
}

type Middleware struct {
	l            pkgLog.Logger
	limiter      *rateLimiter
	cookieName   string
	cookieMaxAge int
	secureCookie bool
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = DefaultRateLimitPerMin
	}
	return Middleware{
		l:            l,
		limiter:      newRateLimiter(cfg.RateLimitPerMin),
		cookieName:   cfg.CookieName,
		cookieMaxAge: cfg.CookieMaxAge,
		secureCookie: cfg.SecureCookie,
	}
}
