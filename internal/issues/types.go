package issues

import "time"

// PR statuses.
const (
	StatusOpen  = "open"
	StatusDraft = "draft"
)

// Issue is an open issue with its label-derived priority.
type Issue struct {
	Number    int
	Repo      string
	Title     string
	URL       string
	Priority  string
	Labels    []string
	CreatedAt time.Time
}

// PullRequest is an open pull request.
type PullRequest struct {
	Number    int
	Repo      string
	Title     string
	URL       string
	Status    string
	CreatedAt time.Time
}

// Overview is the open work of one repository or of the user. Repo is empty
// for the user view. EstimatedHours uses the same weights as the workload
// analysis.
type Overview struct {
	Repo           string
	Issues         []Issue
	PullRequests   []PullRequest
	EstimatedHours float64
}
