package usecase

import (
	"context"
	"strings"

	"reddit-assistant/internal/chat"
	"reddit-assistant/internal/model"
	"reddit-assistant/internal/router"
)

// Overview builds a subreddit overview and pins the caller's session to it.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope, input chat.OverviewInput) (chat.ReplyOutput, error) {
	if sc.SessionID == "" {
		return chat.ReplyOutput{}, chat.ErrMissingScope
	}

	subreddit := strings.TrimSpace(input.Subreddit)
	if subreddit == "" {
		return chat.ReplyOutput{}, chat.ErrInvalidSubreddit
	}

	numPosts := input.NumPosts
	if numPosts <= 0 {
		numPosts = uc.overviewPosts
	}

	mode := model.ListingNew
	if input.PostType != "" {
		mode = model.ListingMode(strings.ToLower(input.PostType))
		switch mode {
		case model.ListingNew, model.ListingHot, model.ListingTop:
		default:
			return chat.ReplyOutput{}, chat.ErrInvalidPostType
		}
	}

	uc.l.Infof(ctx, "%s: r/%s, %d %s posts", LogPrefixOverview, subreddit, numPosts, mode)

	var reply string
	err := uc.sessions.Do(ctx, sc.SessionID, func(sess *model.Session) error {
		var err error
		reply, err = uc.conv.Overview(ctx, sess, router.OverviewInput{
			Subreddit: subreddit,
			NumPosts:  numPosts,
			Mode:      mode,
		})
		return err
	})
	if err != nil {
		uc.logFailure(ctx, LogPrefixOverview, err)
		return chat.ReplyOutput{}, err
	}

	return chat.ReplyOutput{Response: reply}, nil
}
