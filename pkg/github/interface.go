package github

import "context"

// IGitHub is the subset of the GitHub REST API used by DevFlow.
type IGitHub interface {
	CurrentUser(ctx context.Context) (*User, error)
	SearchIssues(ctx context.Context, query string, limit int) ([]Issue, error)
	ListRepoIssues(ctx context.Context, repo, state string, limit int) ([]Issue, error)
	ListRepoPulls(ctx context.Context, repo, state string, limit int) ([]PullRequest, error)
}

var _ IGitHub = (*Client)(nil)
