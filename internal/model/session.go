package model

import "time"

// Session is one user's conversational state.
//
// Posts and OverviewData are nil when absent; an empty non-nil slice means the
// last listing returned nothing. CurrentPostURL, when set, is always a key of
// SummarizedPosts.
type Session struct {
	ID              string
	Posts           []Post
	Subreddit       string
	OverviewData    []OverviewPost
	SummarizedPosts map[string]SummaryRecord
	CurrentPostURL  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewSession returns an empty session.
func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, CreatedAt: now, UpdatedAt: now}
}

// Clear drops all conversational state, keeping the identity.
func (s *Session) Clear() {
	s.Posts = nil
	s.Subreddit = ""
	s.OverviewData = nil
	s.SummarizedPosts = nil
	s.CurrentPostURL = ""
}

// HasPosts reports whether a listing has been stored.
func (s *Session) HasPosts() bool {
	return s.Posts != nil
}

// HasOverview reports whether the session is pinned to overview Q&A.
func (s *Session) HasOverview() bool {
	return s.OverviewData != nil
}

// HasSummaries reports whether any post has been summarized.
func (s *Session) HasSummaries() bool {
	return len(s.SummarizedPosts) > 0
}

// SetListing stores the last listed posts.
func (s *Session) SetListing(subreddit string, posts []Post) {
	if posts == nil {
		posts = []Post{}
	}
	s.Subreddit = subreddit
	s.Posts = posts
}

// SetOverview stores enriched posts; from then on every turn is overview Q&A.
func (s *Session) SetOverview(subreddit string, posts []OverviewPost) {
	if posts == nil {
		posts = []OverviewPost{}
	}
	s.Subreddit = subreddit
	s.OverviewData = posts
}

// RecordSummary stores a summary and makes its post the current one.
func (s *Session) RecordSummary(url string, rec SummaryRecord) {
	if s.SummarizedPosts == nil {
		s.SummarizedPosts = make(map[string]SummaryRecord)
	}
	s.SummarizedPosts[url] = rec
	s.CurrentPostURL = url
}

// Focus makes an already summarized post current. It reports false if url has no summary.
func (s *Session) Focus(url string) bool {
	if _, ok := s.SummarizedPosts[url]; !ok {
		return false
	}
	s.CurrentPostURL = url
	return true
}

// CurrentSummary returns the summary of the post under discussion.
func (s *Session) CurrentSummary() (SummaryRecord, bool) {
	if s.CurrentPostURL == "" {
		return SummaryRecord{}, false
	}
	rec, ok := s.SummarizedPosts[s.CurrentPostURL]
	return rec, ok
}
