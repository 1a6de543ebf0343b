package chat

import (
	"context"

	"reddit-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Conversation
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ReplyOutput, error)
	Overview(ctx context.Context, sc model.Scope, input OverviewInput) (ReplyOutput, error)
	SummarizePost(ctx context.Context, sc model.Scope, input SummarizePostInput) (ReplyOutput, error)

	// Debug
	Classify(ctx context.Context, sc model.Scope, input ChatInput) (ClassifyOutput, error)
	Reset(ctx context.Context, sc model.Scope) (bool, error)
}
