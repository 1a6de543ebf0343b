package reddit

import "time"

const (
	// DefaultBaseURL is the OAuth API host; app-only tokens are only accepted here.
	DefaultBaseURL = "https://oauth.reddit.com"

	// DefaultTokenURL issues client-credentials tokens.
	DefaultTokenURL = "https://www.reddit.com/api/v1/access_token"

	// PermalinkHost prefixes permalinks to build user-facing URLs.
	PermalinkHost = "https://www.reddit.com"

	// DefaultRequestsPerMinute matches the documented budget for OAuth clients.
	DefaultRequestsPerMinute = 100

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// MaxListingLimit is the largest page the listing endpoints return.
	MaxListingLimit = 100

	// moreChildrenBatch is the most ids /api/morechildren accepts per call.
	moreChildrenBatch = 100

	// commentPageLimit is the number of comments requested with the submission.
	commentPageLimit = 500
)

// Listing sorts.
const (
	SortNew ListingSort = "new"
	SortHot ListingSort = "hot"
	SortTop ListingSort = "top"
)

// Time windows for top listings.
const (
	TimeHour  TimeWindow = "hour"
	TimeDay   TimeWindow = "day"
	TimeWeek  TimeWindow = "week"
	TimeMonth TimeWindow = "month"
	TimeYear  TimeWindow = "year"
	TimeAll   TimeWindow = "all"
)

// Comment sorts.
const (
	CommentSortBest          CommentSort = "best"
	CommentSortTop           CommentSort = "top"
	CommentSortNew           CommentSort = "new"
	CommentSortControversial CommentSort = "controversial"
	CommentSortOld           CommentSort = "old"
	CommentSortQA            CommentSort = "qa"
)

const (
	kindComment = "t1"
	kindLink    = "t3"
	kindMore    = "more"
)
