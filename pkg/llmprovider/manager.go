package llmprovider

import (
	"context"
	"fmt"
	"time"

	"reddit-assistant/pkg/log"
)

// Manager sends each request to its providers in priority order.
// Every provider gets exactly one call; a failure either ends the request
// or, with fallback enabled, moves on to the next provider.
type Manager struct {
	providers []Provider
	fallback  bool
	budget    time.Duration
	l         log.Logger
}

// Config controls the provider chain.
type Config struct {
	FallbackEnabled bool
	// MaxTotalTimeout bounds the whole chain. Zero leaves it to the caller's context.
	MaxTotalTimeout time.Duration
}

// NewManager creates a Manager over providers, already sorted by priority.
func NewManager(providers []Provider, cfg Config, l log.Logger) *Manager {
	return &Manager{
		providers: providers,
		fallback:  cfg.FallbackEnabled,
		budget:    cfg.MaxTotalTimeout,
		l:         l,
	}
}

// GenerateContent returns the first successful provider response.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.budget)
		defer cancel()
	}

	chain := m.providers
	if !m.fallback {
		chain = chain[:1]
	}

	var lastErr error
	for i, p := range chain {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w after %d of %d provider(s): %v", ErrAllProvidersFailed, i, len(chain), err)
		}

		resp, err := p.GenerateContent(ctx, req)
		if err == nil {
			m.logSuccess(ctx, p, resp)
			return resp, nil
		}

		m.logFailure(ctx, p, i, err)
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

func (m *Manager) logSuccess(ctx context.Context, p Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.l.Infof(ctx, "pkg.llmprovider.Manager: %s/%s ok (input_tokens=%d output_tokens=%d)",
		p.Name(), p.Model(), in, out)
}

func (m *Manager) logFailure(ctx context.Context, p Provider, pos int, err error) {
	next := "giving up"
	if m.fallback && pos+1 < len(m.providers) {
		next = "falling back to " + m.providers[pos+1].Name()
	}
	m.l.Warnf(ctx, "pkg.llmprovider.Manager: %s/%s failed, %s: %v", p.Name(), p.Model(), next, err)
}
