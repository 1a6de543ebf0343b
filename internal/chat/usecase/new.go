package usecase

import (
	"context"

	"reddit-assistant/internal/chat"
	"reddit-assistant/internal/model"
	"reddit-assistant/internal/router"
	pkgLog "reddit-assistant/pkg/log"
)

var _ chat.UseCase = (*implUseCase)(nil)

// Conversation is the router surface the use case drives.
type Conversation interface {
	Route(ctx context.Context, sess *model.Session, message string) (string, error)
	Classify(sess *model.Session, message string) router.Intent
	Overview(ctx context.Context, sess *model.Session, in router.OverviewInput) (string, error)
	SummarizeByTitle(ctx context.Context, sess *model.Session, title string) (string, error)
}

// SessionStore serializes access to per-client sessions.
type SessionStore interface {
	Do(ctx context.Context, id string, fn func(sess *model.Session) error) error
	Reset(ctx context.Context, id string) bool
}

// Config holds request defaults.
type Config struct {
	OverviewPosts int
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	conv          Conversation
	sessions      SessionStore
	l             pkgLog.Logger
	overviewPosts int
}

// New creates a new chat UseCase implementation.
func New(conv Conversation, sessions SessionStore, l pkgLog.Logger, cfg Config) *implUseCase {
	if cfg.OverviewPosts <= 0 {
		cfg.OverviewPosts = DefaultOverviewPosts
	}
	return &implUseCase{
		conv:          conv,
		sessions:      sessions,
		l:             l,
		overviewPosts: cfg.OverviewPosts,
	}
}
