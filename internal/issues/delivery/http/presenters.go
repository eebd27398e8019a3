package http

import (
	"time"

	"devflow/internal/issues"
)

// allRepositories labels the user view.
const allRepositories = "All Repositories"

type issueResp struct {
	Number    int       `json:"number"`
	Repo      string    `json:"repo"`
	Title     string    `json:"title"`
	URL       string    `json:"url,omitempty"`
	Priority  string    `json:"priority"`
	Labels    []string  `json:"labels"`
	CreatedAt time.Time `json:"created_at"`
}

type pullResp struct {
	Number    int       `json:"number"`
	Repo      string    `json:"repo"`
	Title     string    `json:"title"`
	URL       string    `json:"url,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type githubResp struct {
	Repo           string      `json:"repo"`
	Issues         []issueResp `json:"issues"`
	PRs            []pullResp  `json:"prs"`
	EstimatedHours float64     `json:"estimated_hours"`
}

func newGitHubResp(ov issues.Overview) githubResp {
	out := githubResp{
		Repo:           ov.Repo,
		Issues:         make([]issueResp, 0, len(ov.Issues)),
		PRs:            make([]pullResp, 0, len(ov.PullRequests)),
		EstimatedHours: ov.EstimatedHours,
	}
	if out.Repo == "" {
		out.Repo = allRepositories
	}
	for _, is := range ov.Issues {
		labels := is.Labels
		if labels == nil {
			labels = []string{}
		}
		out.Issues = append(out.Issues, issueResp{
			Number:    is.Number,
			Repo:      is.Repo,
			Title:     is.Title,
			URL:       is.URL,
			Priority:  is.Priority,
			Labels:    labels,
			CreatedAt: is.CreatedAt,
		})
	}
	for _, pr := range ov.PullRequests {
		out.PRs = append(out.PRs, pullResp{
			Number:    pr.Number,
			Repo:      pr.Repo,
			Title:     pr.Title,
			URL:       pr.URL,
			Status:    pr.Status,
			CreatedAt: pr.CreatedAt,
		})
	}
	return out
}
