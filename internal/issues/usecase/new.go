package usecase

import (
	"context"

	"devflow/internal/issues"
	"devflow/pkg/github"
	"devflow/pkg/log"
)

// GitHub is the REST surface the overview needs.
type GitHub interface {
	CurrentUser(ctx context.Context) (*github.User, error)
	SearchIssues(ctx context.Context, query string, limit int) ([]github.Issue, error)
	ListRepoIssues(ctx context.Context, repo, state string, limit int) ([]github.Issue, error)
	ListRepoPulls(ctx context.Context, repo, state string, limit int) ([]github.PullRequest, error)
}

type implUseCase struct {
	client GitHub
	limit  int
	l      log.Logger
}

var _ issues.UseCase = (*implUseCase)(nil)

// New creates the issues usecase. limit <= 0 uses issues.DefaultLimit.
func New(client GitHub, limit int, l log.Logger) *implUseCase {
	if limit <= 0 {
		limit = issues.DefaultLimit
	}
	return &implUseCase{client: client, limit: limit, l: l}
}
