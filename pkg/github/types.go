package github

import (
	"strings"
	"time"
)

// Config holds the GitHub client settings.
type Config struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// User is the authenticated account.
type User struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// Label is an issue label.
type Label struct {
	Name string `json:"name"`
}

// Issue is an issue or pull request as returned by the issues and search APIs.
type Issue struct {
	Number        int       `json:"number"`
	Title         string    `json:"title"`
	State         string    `json:"state"`
	HTMLURL       string    `json:"html_url"`
	RepositoryURL string    `json:"repository_url"`
	Labels        []Label   `json:"labels"`
	Comments      int       `json:"comments"`
	Draft         bool      `json:"draft"`
	CreatedAt     time.Time `json:"created_at"`
	PullRequest   *struct{} `json:"pull_request,omitempty"`
}

// IsPullRequest reports whether the item is a PR.
func (i Issue) IsPullRequest() bool {
	return i.PullRequest != nil
}

// RepoFullName derives "owner/repo" from RepositoryURL.
func (i Issue) RepoFullName() string {
	idx := strings.Index(i.RepositoryURL, "/repos/")
	if idx < 0 {
		return ""
	}
	return i.RepositoryURL[idx+len("/repos/"):]
}

// LabelNames returns label names in order.
func (i Issue) LabelNames() []string {
	names := make([]string, len(i.Labels))
	for j, l := range i.Labels {
		names[j] = l.Name
	}
	return names
}

// PullRequest is an item of the pulls API.
type PullRequest struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	HTMLURL   string    `json:"html_url"`
	Draft     bool      `json:"draft"`
	CreatedAt time.Time `json:"created_at"`
}

type searchResponse struct {
	TotalCount int     `json:"total_count"`
	Items      []Issue `json:"items"`
}

type errorResponse struct {
	Message string `json:"message"`
}
