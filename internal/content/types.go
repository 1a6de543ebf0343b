package content

// Config tunes the fetcher.
type Config struct {
	Workers      int  // concurrent detail fetches in FetchMany
	FilterPinned bool // drop stickied posts from hot and top listings
}

// Thread is a submission with its comments in the requested order.
type Thread struct {
	Title    string
	Content  string
	Comments []string
}

// detailsKey is the cache key for a post's details.
func detailsKey(url string) string {
	return url
}
