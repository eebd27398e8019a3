package tools

import "errors"

var (
	ErrCalendarUnavailable = errors.New("google calendar is not configured")
	ErrTasksUnavailable    = errors.New("google tasks is not configured")
	ErrGitHubUnavailable   = errors.New("github is not configured")
	ErrInvalidInput        = errors.New("invalid tool input")
)
