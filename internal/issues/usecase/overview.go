package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"devflow/internal/issues"
	"devflow/internal/workload"
	"devflow/pkg/github"
)

const (
	assignedQuery = "assignee:%s is:issue is:open"
	authoredQuery = "author:%s is:pr is:open"
)

// Overview fetches issues and pull requests concurrently. The first failure
// cancels the other call.
func (uc *implUseCase) Overview(ctx context.Context, repo string) (issues.Overview, error) {
	if uc.client == nil {
		return issues.Overview{}, issues.ErrNotConfigured
	}
	repo = strings.TrimSpace(repo)
	if repo != "" && !validRepo(repo) {
		return issues.Overview{}, fmt.Errorf("%w: %q", issues.ErrInvalidRepo, repo)
	}

	var (
		found []github.Issue
		pulls []issues.PullRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	if repo == "" {
		user, err := uc.client.CurrentUser(ctx)
		if err != nil {
			return issues.Overview{}, uc.fail(ctx, "current user", err)
		}
		g.Go(func() (err error) {
			found, err = uc.client.SearchIssues(gctx, fmt.Sprintf(assignedQuery, user.Login), uc.limit)
			return err
		})
		g.Go(func() error {
			items, err := uc.client.SearchIssues(gctx, fmt.Sprintf(authoredQuery, user.Login), uc.limit)
			for _, it := range items {
				pulls = append(pulls, pullFromSearch(it))
			}
			return err
		})
	} else {
		g.Go(func() (err error) {
			found, err = uc.client.ListRepoIssues(gctx, repo, "open", uc.limit)
			return err
		})
		g.Go(func() error {
			items, err := uc.client.ListRepoPulls(gctx, repo, "open", uc.limit)
			for _, it := range items {
				pulls = append(pulls, pullFromRepo(it, repo))
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return issues.Overview{}, uc.fail(ctx, "list", err)
	}

	out := issues.Overview{
		Repo:         repo,
		Issues:       make([]issues.Issue, 0, len(found)),
		PullRequests: pulls,
	}
	if out.PullRequests == nil {
		out.PullRequests = []issues.PullRequest{}
	}
	load := workload.IssueLoad{PullRequests: len(pulls)}
	for _, it := range found {
		is := issueFrom(it, repo)
		out.Issues = append(out.Issues, is)
		load.Issues = append(load.Issues, workload.Issue{Number: is.Number, Repo: is.Repo, Priority: is.Priority})
	}
	out.EstimatedHours = workload.IssueTrackerHours(load)
	return out, nil
}

func (uc *implUseCase) fail(ctx context.Context, step string, err error) error {
	if errors.Is(err, github.ErrNoToken) {
		return fmt.Errorf("%w: %w", issues.ErrNotConfigured, err)
	}
	uc.l.Errorf(ctx, "issues.usecase.Overview: %s: %v", step, err)
	return fmt.Errorf("%w: %s: %w", issues.ErrFetchFailed, step, err)
}

func validRepo(repo string) bool {
	owner, name, ok := strings.Cut(repo, "/")
	return ok && owner != "" && name != "" &&
		!strings.Contains(name, "/") &&
		!strings.ContainsAny(repo, " \t?#")
}

func repoOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}

func issueFrom(it github.Issue, repo string) issues.Issue {
	labels := it.LabelNames()
	return issues.Issue{
		Number:    it.Number,
		Repo:      repoOr(it.RepoFullName(), repo),
		Title:     it.Title,
		URL:       it.HTMLURL,
		Priority:  workload.IssuePriority(labels),
		Labels:    labels,
		CreatedAt: it.CreatedAt,
	}
}

func pullFromSearch(it github.Issue) issues.PullRequest {
	return issues.PullRequest{
		Number:    it.Number,
		Repo:      it.RepoFullName(),
		Title:     it.Title,
		URL:       it.HTMLURL,
		Status:    pullStatus(it.Draft),
		CreatedAt: it.CreatedAt,
	}
}

func pullFromRepo(pr github.PullRequest, repo string) issues.PullRequest {
	return issues.PullRequest{
		Number:    pr.Number,
		Repo:      repo,
		Title:     pr.Title,
		URL:       pr.HTMLURL,
		Status:    pullStatus(pr.Draft),
		CreatedAt: pr.CreatedAt,
	}
}

func pullStatus(draft bool) string {
	if draft {
		return issues.StatusDraft
	}
	return issues.StatusOpen
}
