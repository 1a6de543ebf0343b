package test

// ClassifyRequest represents a classify request
type ClassifyRequest struct {
	Message string `json:"message" binding:"required"`
}

// ClassifyResponse shows how the router would treat a message
type ClassifyResponse struct {
	Success    bool   `json:"success"`
	Intent     string `json:"intent,omitempty"`
	Message    string `json:"message"`
	SessionID  string `json:"session_id"`
	Subreddit  string `json:"subreddit,omitempty"`
	Number     *int   `json:"number,omitempty"`
	URL        string `json:"url,omitempty"`
	Sort       string `json:"sort,omitempty"`
	Depth      *int   `json:"depth,omitempty"`
	HasPosts   bool   `json:"has_posts"`
	InOverview bool   `json:"in_overview"`
	Summarized int    `json:"summarized_posts"`
	Error      string `json:"error,omitempty"`
}

// ResetSessionResponse represents a reset session response
type ResetSessionResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
