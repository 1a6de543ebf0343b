package usecase

import (
	"context"

	"reddit-assistant/internal/chat"
	"reddit-assistant/internal/model"
)

// SummarizePost summarizes one of the session's overview posts by title.
func (uc *implUseCase) SummarizePost(ctx context.Context, sc model.Scope, input chat.SummarizePostInput) (chat.ReplyOutput, error) {
	if sc.SessionID == "" {
		return chat.ReplyOutput{}, chat.ErrMissingScope
	}

	var reply string
	err := uc.sessions.Do(ctx, sc.SessionID, func(sess *model.Session) error {
		var err error
		reply, err = uc.conv.SummarizeByTitle(ctx, sess, input.PostTitle)
		return err
	})
	if err != nil {
		uc.logFailure(ctx, LogPrefixSummarizePost, err)
		return chat.ReplyOutput{}, err
	}

	return chat.ReplyOutput{Response: reply}, nil
}
