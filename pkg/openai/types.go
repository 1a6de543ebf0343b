package openai

import (
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"
)

// Config holds client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// openaiImpl is the internal implementation of IOpenAI
type openaiImpl struct {
	client *goopenai.Client
	model  string
}

// Request is a chat completion request. System, when set, is sent as the first message.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is one chat message
type Message struct {
	Role    string
	Content string
}

// Response is the first choice of a completion
type Response struct {
	Content      string
	FinishReason string
	Model        string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
