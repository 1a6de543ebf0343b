package summary

// Log prefixes
const (
	LogPrefixSummarizePostAndComments = "internal.summary.SummarizePostAndComments"
	LogPrefixSummarizeByTitle         = "internal.summary.SummarizeByTitle"
)

// Prompts
const (
	PromptPostSummary          = "Summarize the following Reddit post:"
	PromptCommentSummarySorted = "Summarize the following %d Reddit comments (sorted by %s):"
	PromptCommentSummary       = "Summarize the following %d Reddit comments:"
	PostContentTemplate        = "Title: %s\n\nContent: %s"
)

// Reply templates
const (
	SummaryTemplate          = "Post Summary:\n%s\n\nComment Summary (%d comments):\n%s\n\nWould you like to know anything else about this post or its comments?"
	SummaryByTitleTemplate   = "Post Summary:\n%s\n\nComment Summary (%d comments):\n%s"
	NoCommentsTemplate       = "Post Summary:\n%s\n\nThis post has no comments yet."
	MsgPostTitleNotFoundTmpl = "No post found with the title '%s'. Please check the title and try again."
)

// Generation parameters
const (
	PostSummaryMaxTokens    = 150
	CommentSummaryMaxTokens = 300
	Temperature             = 0.7

	// cacheKeySep joins URL and sort in summary cache keys.
	cacheKeySep = "|"
)
