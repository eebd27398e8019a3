package calendar

import "errors"

var (
	ErrNotConfigured = errors.New("google calendar not configured")
	ErrInvalidDate   = errors.New("invalid date")
	ErrListFailed    = errors.New("listing events failed")
)
