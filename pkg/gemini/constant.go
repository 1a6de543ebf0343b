package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	// APIKeyHeader carries the key so it never shows up in logged URLs.
	APIKeyHeader = "x-goog-api-key"

	generateContentPath = "%s/models/%s:generateContent"
	roleAssistant       = "assistant"
	roleModel           = "model"
	maxErrorBody        = 4096
)
