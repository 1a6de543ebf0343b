package reddit

import "context"

// IReddit is the post/comment provider backed by the Reddit OAuth API.
// Implementations are safe for concurrent use.
type IReddit interface {
	// Listing returns a page of posts from a subreddit in provider order.
	Listing(ctx context.Context, opts ListingOptions) ([]Link, error)

	// Submission returns a post and its fully expanded, flattened comments.
	Submission(ctx context.Context, threadURL string, sort CommentSort) (*Submission, error)
}

// New creates a new Reddit client with the given configuration.
func New(cfg Config) (IReddit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newRedditImpl(cfg), nil
}
