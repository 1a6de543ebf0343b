package model

// ListingMode selects which subreddit listing to read.
type ListingMode string

const (
	ListingNew ListingMode = "new"
	ListingHot ListingMode = "hot"
	ListingTop ListingMode = "top"
)

// Label is the adjective used when presenting a listing ("Here are the 5 newest posts").
func (m ListingMode) Label() string {
	switch m {
	case ListingNew:
		return "newest"
	case ListingTop:
		return "top"
	default:
		return "hottest"
	}
}

// CommentSort orders a thread's comments.
type CommentSort string

const (
	SortBest          CommentSort = "best"
	SortTop           CommentSort = "top"
	SortNew           CommentSort = "new"
	SortControversial CommentSort = "controversial"
	SortOld           CommentSort = "old"
	SortQA            CommentSort = "qa"
)

// CommentSorts lists the accepted sorts in matching order.
var CommentSorts = []CommentSort{SortBest, SortTop, SortNew, SortControversial, SortOld, SortQA}

// Post is a listed submission. URL is its identity.
type Post struct {
	Title string `json:"title"`
	Score int    `json:"score"`
	URL   string `json:"url"`
}

// PostDetails is a post's body and its fully expanded comments in provider order.
type PostDetails struct {
	Content  string   `json:"content"`
	Comments []string `json:"comments"`
}

// OverviewPost is a listed post enriched with its details.
type OverviewPost struct {
	Post
	PostDetails
}

// SummaryRecord is an immutable two-part summary plus the raw data it was built from.
type SummaryRecord struct {
	Summary      string      `json:"summary"`
	Sort         CommentSort `json:"sort"`
	PostTitle    string      `json:"post_title"`
	PostContent  string      `json:"post_content"`
	Comments     []string    `json:"comments"`
	CommentCount int         `json:"comment_count"`
}
