package content

import (
	"reddit-assistant/pkg/cache"
	pkgLog "reddit-assistant/pkg/log"
	"reddit-assistant/pkg/reddit"
)

// Fetcher reads posts and comments from the provider, caching post details by URL.
type Fetcher struct {
	provider     reddit.IReddit
	cache        *cache.Cache[any]
	l            pkgLog.Logger
	workers      int
	filterPinned bool
}

// New creates a Fetcher. The cache is shared with other components; keys written here are bare URLs.
func New(provider reddit.IReddit, c *cache.Cache[any], l pkgLog.Logger, cfg Config) *Fetcher {
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Fetcher{
		provider:     provider,
		cache:        c,
		l:            l,
		workers:      workers,
		filterPinned: cfg.FilterPinned,
	}
}
