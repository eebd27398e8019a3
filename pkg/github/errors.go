package github

import "errors"

var (
	// ErrNoToken is returned by every call when no token is configured.
	ErrNoToken = errors.New("github: token not configured")
)
