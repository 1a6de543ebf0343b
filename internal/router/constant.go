package router

// Log prefixes
const (
	LogPrefixRoute    = "internal.router.Route"
	LogPrefixClassify = "internal.router.Classify"
	LogPrefixOverview = "internal.router.Overview"
)

// Trigger phrases and keywords, matched against the lowercased message
const (
	PhraseReset         = "new session"
	PhraseSummarizePost = "summarize post"
	MarkerSubreddit     = "r/"
)

var (
	listingKeywords   = []string{"posts", "latest", "new", "top", "hot"}
	summarizeKeywords = []string{"summarize", "summary"}
)

// System prompts
const (
	PromptOverviewQA = "You are an assistant answering questions about multiple Reddit posts and their comments. Use the provided context to answer the user's question."
	PromptFollowUp   = "You are an assistant helping answer questions about a Reddit post and its comments. Use the provided context to answer the user's question."
	PromptGeneral    = "You are a helpful assistant that provides information about Reddit. You can explain how to use Reddit, discuss popular subreddits, or give general information about Reddit features and etiquette."
	PromptOverview   = "Provide an overview of the main topics and themes from these %d posts from r/%s:"
)

// Templates
const (
	QuestionTemplate        = "Context:\n%s\n\nQuestion: %s"
	OverviewPostTemplate    = "Title: %s\n\nContent: %s\n\nComments: %s"
	OverviewInputTemplate   = "Title: %s\n\nContent: %s\n\nComments: %s (Total comments: %d)"
	FollowUpContextTemplate = "Title: %s\n\nContent: %s\n\nComments: %s\n\nSummary:\n%s"
	ListingHeaderTemplate   = "Here are the %d %s posts from r/%s:\n\n"
	ListingLineTemplate     = "%d. %s (Score: %d)"
	SummaryReplyTemplate    = "Here's a summary of the post and its comments (comments sorted by %s):\n\n%s"
	OverviewReplyTemplate   = "Overview of r/%s based on %d posts:\n\n%s\n\nYou can now ask questions about these posts and their content."
	contextSeparator        = "\n\n"
)

// User-facing messages
const (
	MsgNewSession        = "New session started. What would you like to know about Reddit?"
	MsgEmptyPostTitle    = "Please provide a post title to summarize."
	MsgNoSubreddit       = "Please name a subreddit, for example r/golang."
	MsgInvalidPostNumber = "Invalid post number. Please choose a number between 1 and %d."
	MsgNoURLOrNumber     = "I'm sorry, but I couldn't find a valid Reddit URL or post number in your request. Please provide a URL or refer to a post number from the previous list."
	MsgPostNotSummarized = "Post %d hasn't been summarized yet. Please ask to summarize it first."
	MsgNoSummarizedPost  = "I'm sorry, but I don't have any summarized post to refer to. Please ask to summarize a post first."
)

// Generation parameters
const (
	OverviewQAMaxTokens = 300
	FollowUpMaxTokens   = 500
	GeneralMaxTokens    = 500
	OverviewMaxTokens   = 500
	Temperature         = 0.7

	DefaultPostCount = 10
	MaxPostCount     = 100
)
