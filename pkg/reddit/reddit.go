package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

var (
	commentsPathRe = regexp.MustCompile(`(?i)/comments/([a-z0-9]+)`)
	shortLinkRe    = regexp.MustCompile(`(?i)^https?://(?:www\.)?redd\.it/([a-z0-9]+)`)
)

// newRedditImpl creates a new Reddit implementation
func newRedditImpl(cfg Config) *redditImpl {
	base := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &userAgentTransport{
			base:      transportOf(cfg.HTTPClient),
			userAgent: cfg.UserAgent,
		},
	}

	ccfg := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// Token requests go through base too, so they carry the User-Agent.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := ccfg.Client(tokenCtx)
	httpClient.Timeout = cfg.Timeout

	burst := cfg.RequestsPerMinute / 10
	if burst < 1 {
		burst = 1
	}

	return &redditImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), burst),
	}
}

func transportOf(c *http.Client) http.RoundTripper {
	if c != nil && c.Transport != nil {
		return c.Transport
	}
	return http.DefaultTransport
}

// userAgentTransport stamps every request; Reddit throttles generic agents.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}

// get performs a rate-limited GET against the OAuth API and decodes JSON into out.
// statusErr maps 403/404 to caller-specific sentinels.
func (r *redditImpl) get(ctx context.Context, path string, query url.Values, out any, statusErr func(int) error) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("reddit: rate limiter: %w", err)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("raw_json", "1")
	endpoint := r.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("reddit: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reddit: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if statusErr != nil {
			if mapped := statusErr(resp.StatusCode); mapped != nil {
				return mapped
			}
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("reddit: API error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("reddit: failed to decode response: %w", err)
	}
	return nil
}

// SubmissionID extracts the base36 submission id from a thread URL.
func SubmissionID(threadURL string) (string, error) {
	threadURL = strings.TrimSpace(threadURL)
	if m := commentsPathRe.FindStringSubmatch(threadURL); m != nil {
		return strings.ToLower(m[1]), nil
	}
	if m := shortLinkRe.FindStringSubmatch(threadURL); m != nil {
		return strings.ToLower(m[1]), nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidURL, threadURL)
}
