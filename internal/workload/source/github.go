package source

import (
	"context"
	"fmt"

	"devflow/internal/workload"
	"devflow/pkg/github"
)

// DefaultSearchLimit caps each search when no limit is configured.
const DefaultSearchLimit = 50

// IssueSearcher is the GitHub API surface the issue source needs.
type IssueSearcher interface {
	CurrentUser(ctx context.Context) (*github.User, error)
	SearchIssues(ctx context.Context, query string, limit int) ([]github.Issue, error)
}

// GitHub reads issues assigned to and pull requests authored by the token owner.
type GitHub struct {
	client IssueSearcher
	limit  int
}

var _ workload.IssueSource = (*GitHub)(nil)

// NewGitHub creates an issue source.
func NewGitHub(client IssueSearcher, limit int) *GitHub {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &GitHub{client: client, limit: limit}
}

// OpenWork returns open assigned issues with label-derived priority and the
// number of open pull requests.
func (s *GitHub) OpenWork(ctx context.Context) (workload.IssueLoad, error) {
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return workload.IssueLoad{}, fmt.Errorf("current user: %w", err)
	}

	issues, err := s.client.SearchIssues(ctx, fmt.Sprintf("assignee:%s is:issue is:open", user.Login), s.limit)
	if err != nil {
		return workload.IssueLoad{}, fmt.Errorf("search issues: %w", err)
	}
	pulls, err := s.client.SearchIssues(ctx, fmt.Sprintf("author:%s is:pr is:open", user.Login), s.limit)
	if err != nil {
		return workload.IssueLoad{}, fmt.Errorf("search pull requests: %w", err)
	}

	load := workload.IssueLoad{Issues: make([]workload.Issue, 0, len(issues)), PullRequests: len(pulls)}
	for _, is := range issues {
		load.Issues = append(load.Issues, workload.Issue{
			Number:   is.Number,
			Repo:     is.RepoFullName(),
			Title:    is.Title,
			URL:      is.HTMLURL,
			Priority: workload.IssuePriority(is.LabelNames()),
		})
	}
	return load, nil
}
