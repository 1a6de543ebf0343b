package chat

import "reddit-assistant/internal/model"

// ChatInput is one conversational turn.
type ChatInput struct {
	Message string
}

// OverviewInput requests an overview of a subreddit's recent posts.
// NumPosts <= 0 and an empty PostType select the defaults.
type OverviewInput struct {
	Subreddit string
	NumPosts  int
	PostType  string
}

// SummarizePostInput names an overview post by title.
type SummarizePostInput struct {
	PostTitle string
}

// ReplyOutput is the text answered to the user.
type ReplyOutput struct {
	Response string
}

// ClassifyOutput is what the router would do with a message, plus every extracted field.
type ClassifyOutput struct {
	Intent     string
	Subreddit  string
	Number     *int
	URL        string
	Sort       model.CommentSort
	Depth      *int
	HasPosts   bool
	InOverview bool
	Summarized int
}
