package content

import (
	"context"

	"reddit-assistant/internal/model"
	pkgErrors "reddit-assistant/pkg/errors"
	"reddit-assistant/pkg/reddit"
)

// ListPosts returns up to limit posts of the given listing in provider order.
// With pinned filtering enabled, stickied posts are dropped from hot and top
// after fetching, so fewer than limit posts may come back.
func (f *Fetcher) ListPosts(ctx context.Context, subreddit string, limit int, mode model.ListingMode) ([]model.Post, error) {
	opts := reddit.ListingOptions{
		Subreddit: subreddit,
		Limit:     limit,
	}
	switch mode {
	case model.ListingNew:
		opts.Sort = reddit.SortNew
	case model.ListingTop:
		opts.Sort = reddit.SortTop
		opts.Time = topWindow
	default:
		opts.Sort = reddit.SortHot
	}

	links, err := f.provider.Listing(ctx, opts)
	if err != nil {
		f.l.Errorf(ctx, "%s: r/%s %s: %v", LogPrefixListPosts, subreddit, mode, err)
		return nil, pkgErrors.NewProviderError(LogPrefixListPosts, err)
	}

	filter := f.filterPinned && mode != model.ListingNew
	posts := make([]model.Post, 0, len(links))
	for _, link := range links {
		if filter && (link.Stickied || link.Pinned) {
			continue
		}
		posts = append(posts, model.Post{
			Title: link.Title,
			Score: link.Score,
			URL:   link.PermalinkURL(),
		})
	}

	f.l.Debugf(ctx, "%s: r/%s %s returned %d posts", LogPrefixListPosts, subreddit, mode, len(posts))
	return posts, nil
}

// FetchPostDetails returns a post's body and all of its comments, consulting the cache first.
func (f *Fetcher) FetchPostDetails(ctx context.Context, url string) (model.PostDetails, error) {
	key := detailsKey(url)
	if cached, ok := f.cache.Get(key); ok {
		if details, ok := cached.(model.PostDetails); ok {
			f.l.Debugf(ctx, "%s: cache hit for %s", LogPrefixFetchPostDetails, url)
			return details, nil
		}
	}

	sub, err := f.provider.Submission(ctx, url, "")
	if err != nil {
		f.l.Errorf(ctx, "%s: %s: %v", LogPrefixFetchPostDetails, url, err)
		return model.PostDetails{}, pkgErrors.NewProviderError(LogPrefixFetchPostDetails, err)
	}

	details := model.PostDetails{
		Content:  sub.Link.Selftext,
		Comments: sub.Bodies(),
	}
	f.cache.Put(key, details)
	return details, nil
}

// FetchThread returns a submission with its comments ordered by sort. It is not cached.
func (f *Fetcher) FetchThread(ctx context.Context, url string, sort model.CommentSort) (Thread, error) {
	sub, err := f.provider.Submission(ctx, url, reddit.CommentSort(sort))
	if err != nil {
		f.l.Errorf(ctx, "%s: %s sorted by %s: %v", LogPrefixFetchThread, url, sort, err)
		return Thread{}, pkgErrors.NewProviderError(LogPrefixFetchThread, err)
	}
	return Thread{
		Title:    sub.Link.Title,
		Content:  sub.Link.Selftext,
		Comments: sub.Bodies(),
	}, nil
}
