package issues

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Overview returns open issues and pull requests of repo ("owner/name").
	// An empty repo means the issues assigned to and the pull requests
	// authored by the token owner across every repository.
	Overview(ctx context.Context, repo string) (Overview, error)
}
