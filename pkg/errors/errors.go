package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error by how the request boundary must surface it.
type Kind int

const (
	KindInternal Kind = iota
	// KindInput is malformed or missing request data.
	KindInput
	// KindIntentUnresolved is a user-correctable ambiguity answered conversationally.
	KindIntentUnresolved
	// KindProvider is a failure of the Reddit post/comment provider.
	KindProvider
	// KindLLM is a failure of the LLM text provider.
	KindLLM
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindIntentUnresolved:
		return "intent_unresolved"
	case KindProvider:
		return "provider"
	case KindLLM:
		return "llm"
	default:
		return "internal"
	}
}

// Error carries a Kind alongside the failing operation and the cause.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewInputError reports a malformed request; message is shown to the user.
func NewInputError(message string) error {
	return &Error{Kind: KindInput, Message: message}
}

// NewIntentUnresolved reports an ambiguity the user can correct; message is shown to the user.
func NewIntentUnresolved(message string) error {
	return &Error{Kind: KindIntentUnresolved, Message: message}
}

// NewProviderError wraps a Reddit provider failure raised during op.
func NewProviderError(op string, err error) error {
	return &Error{Kind: KindProvider, Op: op, Err: err}
}

// NewLLMError wraps an LLM provider failure raised during op.
func NewLLMError(op string, err error) error {
	return &Error{Kind: KindLLM, Op: op, Err: err}
}

// KindOf returns the Kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Op returns the operation recorded on err, or "".
func Op(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

// HTTPStatus maps a Kind to the status code the chat boundary answers with.
func HTTPStatus(k Kind) int {
	switch k {
	case KindInput:
		return http.StatusBadRequest
	case KindIntentUnresolved:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}
