package content

import "reddit-assistant/pkg/reddit"

// Log prefixes
const (
	LogPrefixListPosts        = "internal.content.ListPosts"
	LogPrefixFetchPostDetails = "internal.content.FetchPostDetails"
	LogPrefixFetchMany        = "internal.content.FetchMany"
	LogPrefixFetchThread      = "internal.content.FetchThread"
)

// Defaults
const (
	DefaultWorkers = 10

	// topWindow is the recency window applied to top listings.
	topWindow = reddit.TimeWeek
)
