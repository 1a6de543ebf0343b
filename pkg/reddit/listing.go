package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Listing returns a page of posts from a subreddit in provider order.
func (r *redditImpl) Listing(ctx context.Context, opts ListingOptions) ([]Link, error) {
	sub := strings.TrimSpace(strings.TrimPrefix(opts.Subreddit, "r/"))
	if sub == "" {
		return nil, ErrEmptySubreddit
	}

	sort := opts.Sort
	if sort == "" {
		sort = SortHot
	}

	limit := opts.Limit
	if limit <= 0 || limit > MaxListingLimit {
		limit = MaxListingLimit
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if sort == SortTop && opts.Time != "" {
		query.Set("t", string(opts.Time))
	}

	var page listingThing
	path := fmt.Sprintf("/r/%s/%s", url.PathEscape(sub), sort)
	err := r.get(ctx, path, query, &page, func(code int) error {
		switch code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: r/%s", ErrSubredditNotFound, sub)
		case http.StatusForbidden:
			return fmt.Errorf("%w: r/%s", ErrSubredditPrivate, sub)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Unknown subreddits redirect to a subreddit search (t5 things).
	links := make([]Link, 0, len(page.Data.Children))
	for _, child := range page.Data.Children {
		if child.Kind != kindLink {
			continue
		}
		var d linkData
		if err := json.Unmarshal(child.Data, &d); err != nil {
			return nil, fmt.Errorf("reddit: failed to decode link: %w", err)
		}
		links = append(links, d.toLink())
	}

	if len(links) == 0 && len(page.Data.Children) > 0 {
		return nil, fmt.Errorf("%w: r/%s", ErrSubredditNotFound, sub)
	}
	if len(links) > limit {
		links = links[:limit]
	}
	return links, nil
}
