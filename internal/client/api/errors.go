package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport failures: the server never produced
	// a response (unreachable host, timeout, connection reset).
	ErrUnavailable = errors.New("server unavailable")
)

// fallbackMessage is used when a failure response carries no detail field.
const fallbackMessage = "request failed"

// Error is the normalized failure shape produced by the gateway. Message
// holds the server-supplied detail when present, Status the HTTP status
// code (0 for transport failures), and the wrapped cause allows errors.Is
// matching against sentinels.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(status int, message string, cause error) *Error {
	if message == "" {
		message = fallbackMessage
	}
	return &Error{Status: status, Message: message, cause: cause}
}

// newTransportError wraps a failure where no response was received.
func newTransportError(cause error) *Error {
	return &Error{
		Status:  0,
		Message: fmt.Sprintf("server unavailable: %v", cause),
		cause:   fmt.Errorf("%w: %w", ErrUnavailable, cause),
	}
}
