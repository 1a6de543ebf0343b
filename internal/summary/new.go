package summary

import (
	"context"

	"reddit-assistant/internal/content"
	"reddit-assistant/internal/model"
	"reddit-assistant/pkg/cache"
	"reddit-assistant/pkg/llmprovider"
	pkgLog "reddit-assistant/pkg/log"
)

// ThreadFetcher loads a submission with its comments in a given order.
type ThreadFetcher interface {
	FetchThread(ctx context.Context, url string, sort model.CommentSort) (content.Thread, error)
}

// Summarizer produces two-part post and comment summaries.
type Summarizer struct {
	fetcher ThreadFetcher
	llm     llmprovider.TextGenerator
	cache   *cache.Cache[any]
	l       pkgLog.Logger
}

// New creates a Summarizer sharing the process-wide resource cache.
func New(fetcher ThreadFetcher, llm llmprovider.TextGenerator, c *cache.Cache[any], l pkgLog.Logger) *Summarizer {
	return &Summarizer{
		fetcher: fetcher,
		llm:     llm,
		cache:   c,
		l:       l,
	}
}

func cacheKey(url string, sort model.CommentSort) string {
	return url + cacheKeySep + string(sort)
}
