package router

import (
	"context"
	"fmt"
	"strings"

	"reddit-assistant/internal/intent"
	"reddit-assistant/internal/model"
	pkgErrors "reddit-assistant/pkg/errors"
	"reddit-assistant/pkg/reddit"
)

func (r *Router) handleReset(ctx context.Context, sess *model.Session, _ Turn) (string, error) {
	sess.Clear()
	return MsgNewSession, nil
}

func (r *Router) handleSummarizeByTitle(ctx context.Context, sess *model.Session, t Turn) (string, error) {
	title := strings.TrimSpace(strings.ReplaceAll(t.Lower, PhraseSummarizePost, ""))
	return r.SummarizeByTitle(ctx, sess, title)
}

// SummarizeByTitle summarizes a post from the session's overview by its title.
func (r *Router) SummarizeByTitle(ctx context.Context, sess *model.Session, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", pkgErrors.NewIntentUnresolved(MsgEmptyPostTitle)
	}
	return r.summarizer.SummarizeByTitle(ctx, sess.OverviewData, title)
}

func (r *Router) handleOverviewQA(ctx context.Context, sess *model.Session, t Turn) (string, error) {
	parts := make([]string, len(sess.OverviewData))
	for i, p := range sess.OverviewData {
		parts[i] = fmt.Sprintf(OverviewPostTemplate, p.Title, p.Content, strings.Join(p.Comments, " "))
	}
	question := fmt.Sprintf(QuestionTemplate, strings.Join(parts, contextSeparator), t.Text)

	reply, err := r.llm.Generate(ctx, PromptOverviewQA, question, OverviewQAMaxTokens, Temperature)
	if err != nil {
		return "", pkgErrors.NewLLMError(LogPrefixRoute, err)
	}
	return reply, nil
}

func (r *Router) handleListPosts(ctx context.Context, sess *model.Session, t Turn) (string, error) {
	subreddit, ok := intent.ExtractSubredditName(t.Text)
	if !ok {
		return "", pkgErrors.NewIntentUnresolved(MsgNoSubreddit)
	}

	count, ok := intent.ExtractNumber(t.Text)
	if !ok || count <= 0 {
		count = r.defaultPosts
	}
	if count > r.maxPosts {
		count = r.maxPosts
	}
	mode := listingMode(t.Lower)

	r.l.Infof(ctx, "%s: listing %d %s posts from r/%s", LogPrefixRoute, count, mode, subreddit)
	posts, err := r.fetcher.ListPosts(ctx, subreddit, count, mode)
	if err != nil {
		return "", err
	}

	sess.SetListing(subreddit, posts)

	var b strings.Builder
	fmt.Fprintf(&b, ListingHeaderTemplate, count, mode.Label(), subreddit)
	for i, p := range posts {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, ListingLineTemplate, i+1, p.Title, p.Score)
	}
	return b.String(), nil
}

func (r *Router) handleSummarizeThread(ctx context.Context, sess *model.Session, t Turn) (string, error) {
	url, ok := intent.ExtractURL(t.Text)
	if ok {
		if _, err := reddit.SubmissionID(url); err != nil {
			return "", pkgErrors.NewIntentUnresolved(MsgNoURLOrNumber)
		}
	} else {
		post, err := postByNumber(sess, t.Text)
		if err != nil {
			return "", err
		}
		url = post.URL
	}

	sort, ok := intent.ExtractSort(t.Text)
	if !ok {
		sort = model.SortBest
	}

	rec, err := r.summarizer.SummarizePostAndComments(ctx, url, sort)
	if err != nil {
		return "", err
	}

	sess.RecordSummary(url, rec)
	return fmt.Sprintf(SummaryReplyTemplate, sort, rec.Summary), nil
}

// postByNumber resolves a 1-based post reference against the last listing.
// A literal 0 counts as no reference.
func postByNumber(sess *model.Session, text string) (model.Post, error) {
	n, ok := intent.ExtractNumber(text)
	if !ok || n == 0 || !sess.HasPosts() {
		return model.Post{}, pkgErrors.NewIntentUnresolved(MsgNoURLOrNumber)
	}
	if n < 1 || n > len(sess.Posts) {
		return model.Post{}, pkgErrors.NewIntentUnresolved(fmt.Sprintf(MsgInvalidPostNumber, len(sess.Posts)))
	}
	return sess.Posts[n-1], nil
}

func (r *Router) handleFollowUp(ctx context.Context, sess *model.Session, t Turn) (string, error) {
	if n, ok := intent.ExtractNumber(t.Text); ok && n != 0 && sess.HasPosts() {
		if n < 1 || n > len(sess.Posts) {
			return "", pkgErrors.NewIntentUnresolved(fmt.Sprintf(MsgInvalidPostNumber, len(sess.Posts)))
		}
		if !sess.Focus(sess.Posts[n-1].URL) {
			return "", pkgErrors.NewIntentUnresolved(fmt.Sprintf(MsgPostNotSummarized, n))
		}
	}

	rec, ok := sess.CurrentSummary()
	if !ok {
		return "", pkgErrors.NewIntentUnresolved(MsgNoSummarizedPost)
	}

	postContext := fmt.Sprintf(FollowUpContextTemplate,
		rec.PostTitle, rec.PostContent, strings.Join(rec.Comments, " "), rec.Summary)
	question := fmt.Sprintf(QuestionTemplate, postContext, t.Text)

	reply, err := r.llm.Generate(ctx, PromptFollowUp, question, FollowUpMaxTokens, Temperature)
	if err != nil {
		return "", pkgErrors.NewLLMError(LogPrefixRoute, err)
	}
	return reply, nil
}

func (r *Router) handleGeneral(ctx context.Context, _ *model.Session, t Turn) (string, error) {
	reply, err := r.llm.Generate(ctx, PromptGeneral, t.Text, GeneralMaxTokens, Temperature)
	if err != nil {
		return "", pkgErrors.NewLLMError(LogPrefixRoute, err)
	}
	return reply, nil
}
