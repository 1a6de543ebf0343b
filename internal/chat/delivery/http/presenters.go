package http

import (
	"strings"

	"reddit-assistant/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message *string `json:"message"`
}

func (r chatReq) validate() error {
	if r.Message == nil || *r.Message == "" {
		return chat.ErrInvalidMessage
	}
	return nil
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{Message: *r.Message}
}

// ---

type overviewReq struct {
	Subreddit string `json:"subreddit"`
	NumPosts  int    `json:"num_posts"`
	PostType  string `json:"post_type"`
}

func (r overviewReq) validate() error {
	if strings.TrimSpace(r.Subreddit) == "" {
		return chat.ErrInvalidSubreddit
	}
	return nil
}

func (r overviewReq) toInput() chat.OverviewInput {
	return chat.OverviewInput{
		Subreddit: r.Subreddit,
		NumPosts:  r.NumPosts,
		PostType:  r.PostType,
	}
}

// ---

type summarizePostReq struct {
	PostTitle string `json:"post_title"`
}

func (r summarizePostReq) validate() error { return nil }

func (r summarizePostReq) toInput() chat.SummarizePostInput {
	return chat.SummarizePostInput{PostTitle: r.PostTitle}
}
