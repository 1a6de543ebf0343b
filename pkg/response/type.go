package response

// Resp is the standard JSON envelope for system and debug endpoints.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ChatResp is the body of every conversational endpoint.
type ChatResp struct {
	Response string `json:"response"`
}
