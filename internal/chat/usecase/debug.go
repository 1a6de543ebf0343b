package usecase

import (
	"context"
	"strings"

	"reddit-assistant/internal/chat"
	"reddit-assistant/internal/intent"
	"reddit-assistant/internal/model"
)

// Classify reports the rule the router would run for the message and every
// field the extractors find in it. The session is read, never changed.
func (uc *implUseCase) Classify(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ClassifyOutput, error) {
	if sc.SessionID == "" {
		return chat.ClassifyOutput{}, chat.ErrMissingScope
	}
	if strings.TrimSpace(input.Message) == "" {
		return chat.ClassifyOutput{}, chat.ErrInvalidMessage
	}

	var out chat.ClassifyOutput
	_ = uc.sessions.Do(ctx, sc.SessionID, func(sess *model.Session) error {
		out.Intent = string(uc.conv.Classify(sess, input.Message))
		out.HasPosts = sess.HasPosts()
		out.InOverview = sess.HasOverview()
		out.Summarized = len(sess.SummarizedPosts)
		return nil
	})

	msg := input.Message
	out.Subreddit, _ = intent.ExtractSubredditName(msg)
	out.URL, _ = intent.ExtractURL(msg)
	out.Sort, _ = intent.ExtractSort(msg)
	if n, ok := intent.ExtractNumber(msg); ok {
		out.Number = &n
	}
	if d, ok := intent.ExtractDepth(msg); ok {
		out.Depth = &d
	}

	uc.l.Infof(ctx, "%s: %q -> %s", LogPrefixClassify, msg, out.Intent)
	return out, nil
}

// Reset clears the caller's session. It reports whether there was one.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) (bool, error) {
	if sc.SessionID == "" {
		return false, chat.ErrMissingScope
	}
	return uc.sessions.Reset(ctx, sc.SessionID), nil
}
