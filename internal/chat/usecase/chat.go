package usecase

import (
	"context"

	"reddit-assistant/internal/chat"
	"reddit-assistant/internal/model"
	pkgErrors "reddit-assistant/pkg/errors"
)

// Chat routes one message through the caller's session.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ReplyOutput, error) {
	if sc.SessionID == "" {
		return chat.ReplyOutput{}, chat.ErrMissingScope
	}
	if input.Message == "" {
		return chat.ReplyOutput{}, chat.ErrInvalidMessage
	}

	var reply string
	err := uc.sessions.Do(ctx, sc.SessionID, func(sess *model.Session) error {
		var err error
		reply, err = uc.conv.Route(ctx, sess, input.Message)
		return err
	})
	if err != nil {
		uc.logFailure(ctx, LogPrefixChat, err)
		return chat.ReplyOutput{}, err
	}

	return chat.ReplyOutput{Response: reply}, nil
}

// logFailure logs upstream failures with their kind and operation; corrective
// replies are part of the conversation and only logged at debug level.
func (uc *implUseCase) logFailure(ctx context.Context, prefix string, err error) {
	switch kind := pkgErrors.KindOf(err); kind {
	case pkgErrors.KindInput, pkgErrors.KindIntentUnresolved:
		uc.l.Debugf(ctx, "%s: %s: %v", prefix, kind, err)
	default:
		uc.l.Errorf(ctx, "%s: %s failure in %s: %v", prefix, kind, pkgErrors.Op(err), err)
	}
}
