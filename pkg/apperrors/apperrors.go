package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so controllers can map it to an HTTP status
// without inspecting message text.
type Kind int

const (
	// KindValidation marks a domain invariant violation. The mutation was
	// rolled back and the message names the rule that was broken.
	KindValidation Kind = iota + 1
	// KindNotFound marks a missing referenced entity.
	KindNotFound
	// KindConflict marks a lost uniqueness race that could not be recovered
	// by re-resolving the existing row.
	KindConflict
	// KindState marks an operation attempted out of sequence; the message
	// names the missing precondition.
	KindState
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func State(format string, args ...interface{}) *Error {
	return &Error{Kind: KindState, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause while keeping the kind and message.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
func IsState(err error) bool      { return KindOf(err) == KindState }

// HTTPStatus maps a failure kind to a response status. Unknown errors are
// treated as internal.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
