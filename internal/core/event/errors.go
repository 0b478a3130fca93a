package event

import "errors"

var (
	// ErrNoHandler is returned by Dispatch when no handler is registered
	// for the event name. This is a caller contract violation, not a
	// recoverable condition; it is never swallowed.
	ErrNoHandler = errors.New("event: handler not found")

	// ErrSignatureMismatch is returned when two keys sharing a name were
	// declared with different parameter or result types.
	ErrSignatureMismatch = errors.New("event: signature mismatch")
)
