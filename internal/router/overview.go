package router

import (
	"context"
	"fmt"
	"strings"

	"reddit-assistant/internal/model"
	pkgErrors "reddit-assistant/pkg/errors"
)

// Overview lists posts, loads every post's details, and asks the LLM for the main
// themes. On success the enriched posts are stored and the session answers every
// later message from them until it is reset.
func (r *Router) Overview(ctx context.Context, sess *model.Session, in OverviewInput) (string, error) {
	subreddit := strings.TrimPrefix(strings.TrimSpace(in.Subreddit), "r/")
	if subreddit == "" {
		return "", pkgErrors.NewInputError("Invalid input. 'subreddit' field must be a non-empty string.")
	}

	count := in.NumPosts
	if count <= 0 {
		count = r.defaultPosts
	}
	if count > r.maxPosts {
		count = r.maxPosts
	}
	mode := in.Mode
	if mode == "" {
		mode = model.ListingNew
	}

	posts, err := r.fetcher.ListPosts(ctx, subreddit, count, mode)
	if err != nil {
		return "", err
	}

	enriched, err := r.fetcher.FetchMany(ctx, posts)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(enriched))
	for i, p := range enriched {
		parts[i] = fmt.Sprintf(OverviewInputTemplate, p.Title, p.Content, strings.Join(p.Comments, " "), len(p.Comments))
	}

	r.l.Infof(ctx, "%s: summarizing %d posts from r/%s", LogPrefixOverview, len(enriched), subreddit)
	overview, err := r.llm.Generate(ctx,
		fmt.Sprintf(PromptOverview, count, subreddit),
		strings.Join(parts, contextSeparator),
		OverviewMaxTokens, Temperature)
	if err != nil {
		return "", pkgErrors.NewLLMError(LogPrefixOverview, err)
	}

	sess.SetOverview(subreddit, enriched)
	return fmt.Sprintf(OverviewReplyTemplate, subreddit, count, overview), nil
}
