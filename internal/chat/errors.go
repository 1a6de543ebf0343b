package chat

import (
	"errors"

	pkgErrors "reddit-assistant/pkg/errors"
)

var (
	ErrInvalidPayload   = pkgErrors.NewInputError("Invalid input. Please provide a valid JSON payload.")
	ErrInvalidMessage   = pkgErrors.NewInputError("Invalid input. 'message' field must be a non-empty string.")
	ErrInvalidSubreddit = pkgErrors.NewInputError("Invalid input. 'subreddit' field must be a non-empty string.")
	ErrInvalidPostType  = pkgErrors.NewInputError("Invalid input. 'post_type' must be one of new, hot or top.")
	ErrMissingScope     = errors.New("no session attached to the request")
)
