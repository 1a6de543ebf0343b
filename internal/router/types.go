package router

import (
	"context"

	"reddit-assistant/internal/model"
)

// Intent names the rule that handles a message.
type Intent string

const (
	IntentReset            Intent = "RESET"
	IntentSummarizeByTitle Intent = "SUMMARIZE_BY_TITLE"
	IntentOverviewQA       Intent = "OVERVIEW_QA"
	IntentListPosts        Intent = "LIST_POSTS"
	IntentSummarizeThread  Intent = "SUMMARIZE_THREAD"
	IntentFollowUp         Intent = "FOLLOW_UP"
	IntentGeneral          Intent = "GENERAL"
)

// Turn is one user message with its lowercased form.
type Turn struct {
	Text  string
	Lower string
}

// Rule pairs a side-effect-free predicate with the handler that runs when it matches first.
type Rule struct {
	Intent Intent
	Match  func(sess *model.Session, t Turn) bool
	Handle func(ctx context.Context, sess *model.Session, t Turn) (string, error)
}

// Fetcher lists subreddit posts and enriches them with details.
type Fetcher interface {
	ListPosts(ctx context.Context, subreddit string, limit int, mode model.ListingMode) ([]model.Post, error)
	FetchMany(ctx context.Context, posts []model.Post) ([]model.OverviewPost, error)
}

// Summarizer produces thread summaries.
type Summarizer interface {
	SummarizePostAndComments(ctx context.Context, url string, sort model.CommentSort) (model.SummaryRecord, error)
	SummarizeByTitle(ctx context.Context, overview []model.OverviewPost, title string) (string, error)
}

// Config tunes listing sizes.
type Config struct {
	DefaultPosts int
	MaxPosts     int
}

// OverviewInput selects the posts an overview is built from.
type OverviewInput struct {
	Subreddit string
	NumPosts  int
	Mode      model.ListingMode
}
