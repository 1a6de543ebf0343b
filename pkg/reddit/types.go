package reddit

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ListingSort selects a subreddit listing.
type ListingSort string

// TimeWindow bounds a top listing.
type TimeWindow string

// CommentSort orders a submission's comment tree.
type CommentSort string

// Config holds Reddit client configuration.
type Config struct {
	ClientID          string
	ClientSecret      string
	UserAgent         string
	BaseURL           string
	TokenURL          string
	RequestsPerMinute int
	Timeout           time.Duration
	HTTPClient        *http.Client // base client; its Transport carries OAuth requests
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("reddit: ClientID is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("reddit: ClientSecret is required")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("reddit: UserAgent is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TokenURL == "" {
		c.TokenURL = DefaultTokenURL
	}
	if c.RequestsPerMinute <= 0 {
		c.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	return nil
}

// redditImpl is the internal implementation of IReddit.
type redditImpl struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ListingOptions selects a page of posts.
type ListingOptions struct {
	Subreddit string
	Sort      ListingSort
	Limit     int
	Time      TimeWindow // only used by SortTop
}

// Link is a submission as returned by listing endpoints.
type Link struct {
	ID          string
	Name        string
	Subreddit   string
	Title       string
	Selftext    string
	Author      string
	Permalink   string
	URL         string
	Score       int
	NumComments int
	Stickied    bool
	Pinned      bool
}

// PermalinkURL returns the absolute thread URL.
func (l Link) PermalinkURL() string {
	return PermalinkHost + l.Permalink
}

// Comment is one comment of a flattened tree.
type Comment struct {
	ID       string
	Name     string
	ParentID string
	Author   string
	Body     string
	Score    int
	Depth    int
}

// Submission is a post with its fully expanded comments in breadth-first order.
type Submission struct {
	Link     Link
	Sort     CommentSort
	Comments []Comment
}

// Bodies returns the comment bodies in order.
func (s Submission) Bodies() []string {
	bodies := make([]string, len(s.Comments))
	for i, c := range s.Comments {
		bodies[i] = c.Body
	}
	return bodies
}

// Wire types.

type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type listing struct {
	After    string  `json:"after"`
	Children []thing `json:"children"`
}

type listingThing struct {
	Kind string  `json:"kind"`
	Data listing `json:"data"`
}

type linkData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Subreddit   string `json:"subreddit"`
	Title       string `json:"title"`
	Selftext    string `json:"selftext"`
	Author      string `json:"author"`
	Permalink   string `json:"permalink"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
	Stickied    bool   `json:"stickied"`
	Pinned      bool   `json:"pinned"`
}

func (d linkData) toLink() Link {
	return Link{
		ID:          d.ID,
		Name:        d.Name,
		Subreddit:   d.Subreddit,
		Title:       d.Title,
		Selftext:    d.Selftext,
		Author:      d.Author,
		Permalink:   d.Permalink,
		URL:         d.URL,
		Score:       d.Score,
		NumComments: d.NumComments,
		Stickied:    d.Stickied,
		Pinned:      d.Pinned,
	}
}

type commentData struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	ParentID string          `json:"parent_id"`
	Author   string          `json:"author"`
	Body     string          `json:"body"`
	Score    int             `json:"score"`
	Depth    int             `json:"depth"`
	Replies  json.RawMessage `json:"replies"` // "" or a Listing
}

type moreData struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ParentID string   `json:"parent_id"`
	Count    int      `json:"count"`
	Depth    int      `json:"depth"`
	Children []string `json:"children"`
}

type moreChildrenResponse struct {
	JSON struct {
		Errors [][]any `json:"errors"`
		Data   struct {
			Things []thing `json:"things"`
		} `json:"data"`
	} `json:"json"`
}
