package chat

import "errors"

var (
	ErrEmptyMessage  = errors.New("message is required")
	ErrNotConfigured = errors.New("not configured")
)
