package llmprovider

import (
	"context"
	"fmt"
	"strings"
)

var _ TextGenerator = (*Manager)(nil)

// Generate sends one system instruction and one user message through the provider
// chain and returns the reply with surrounding whitespace trimmed.
func (m *Manager) Generate(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	req := &Request{
		Messages: []Message{
			{Role: "user", Parts: []Part{{Text: user}}},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	if system != "" {
		req.SystemInstruction = &Message{Role: "system", Parts: []Part{{Text: system}}}
	}

	resp, err := m.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w from %s", ErrEmptyResponse, resp.ProviderName)
	}
	return text, nil
}
