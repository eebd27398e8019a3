package workload

import "errors"

var (
	// ErrSourceUnavailable wraps every failed or timed-out source read.
	ErrSourceUnavailable = errors.New("workload source unavailable")
	// ErrSourceNotConfigured is recorded for a source that was never wired.
	ErrSourceNotConfigured = errors.New("source not configured")
)
