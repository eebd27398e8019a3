package issues

import "errors"

var (
	// ErrNotConfigured is returned when no GitHub token is set.
	ErrNotConfigured = errors.New("github not configured")
	// ErrInvalidRepo rejects a repo that is not "owner/name".
	ErrInvalidRepo = errors.New("repo must be 'owner/name'")
	// ErrFetchFailed wraps a failed GitHub API call.
	ErrFetchFailed = errors.New("fetching github work failed")
)
