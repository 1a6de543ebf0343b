package reddit

import "errors"

var (
	ErrSubredditNotFound  = errors.New("subreddit not found")
	ErrSubredditPrivate   = errors.New("subreddit is private or quarantined")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidURL         = errors.New("not a reddit submission url")
	ErrEmptySubreddit     = errors.New("subreddit name is empty")
)
