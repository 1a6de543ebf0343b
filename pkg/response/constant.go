package response

const (
	MessageSuccess      = "Success"
	TooManyRequestsCode = 429

	// ErrorReplyTemplate is the chat reply for upstream and internal failures.
	ErrorReplyTemplate = "I'm sorry, but I encountered an error: %v"
)
