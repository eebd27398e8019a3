package tasks

import "errors"

var (
	// ErrNotConfigured is returned when Google Tasks was not authorized.
	ErrNotConfigured = errors.New("google tasks not configured")
	// ErrListFailed wraps a failed Tasks API call.
	ErrListFailed = errors.New("listing tasks failed")
)
