package content

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"reddit-assistant/internal/model"
	pkgErrors "reddit-assistant/pkg/errors"
)

// FetchMany enriches posts with their details using a bounded pool of workers.
// Every fetch runs to completion; the result keeps the input order and holds
// every successful fetch even when the returned error reports failures.
func (f *Fetcher) FetchMany(ctx context.Context, posts []model.Post) ([]model.OverviewPost, error) {
	out := make([]model.OverviewPost, len(posts))

	var (
		mu   sync.Mutex
		errs []error
	)

	var g errgroup.Group
	g.SetLimit(f.workers)

	for i, post := range posts {
		i, post := i, post
		g.Go(func() error {
			details, err := f.FetchPostDetails(ctx, post.URL)

			mu.Lock()
			defer mu.Unlock()
			out[i] = model.OverviewPost{Post: post, PostDetails: details}
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", post.URL, err))
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) > 0 {
		f.l.Warnf(ctx, "%s: %d of %d fetches failed", LogPrefixFetchMany, len(errs), len(posts))
		return out, pkgErrors.NewProviderError(LogPrefixFetchMany, errors.Join(errs...))
	}
	return out, nil
}
