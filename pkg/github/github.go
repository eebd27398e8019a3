package github

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
)

// Client talks to the GitHub REST API with a personal access token.
type Client struct {
	http  *resty.Client
	token string

	mu   sync.Mutex
	user *User
}

// New creates a GitHub client. An empty token yields a client whose
// calls all fail with ErrNoToken.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", apiVersion)
	if cfg.Token != "" {
		httpClient.SetAuthToken(cfg.Token)
	}

	return &Client{http: httpClient, token: cfg.Token}
}

// Configured reports whether a token is set.
func (c *Client) Configured() bool {
	return c.token != ""
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out interface{}) error {
	if c.token == "" {
		return ErrNoToken
	}

	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(out).
		SetError(&apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("github: GET %s: %w", path, err)
	}
	if resp.IsError() {
		msg := apiErr.Message
		if msg == "" {
			msg = resp.Status()
		}
		return fmt.Errorf("github: GET %s returned %d: %s", path, resp.StatusCode(), msg)
	}
	return nil
}

// CurrentUser returns the authenticated user. The result is cached.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user != nil {
		return c.user, nil
	}

	var u User
	if err := c.get(ctx, "/user", nil, &u); err != nil {
		return nil, err
	}
	c.user = &u
	return c.user, nil
}

// SearchIssues runs an issue/PR search and returns at most limit items.
func (c *Client) SearchIssues(ctx context.Context, query string, limit int) ([]Issue, error) {
	var out searchResponse
	params := map[string]string{
		"q":        query,
		"per_page": strconv.Itoa(perPage(limit)),
	}
	if err := c.get(ctx, "/search/issues", params, &out); err != nil {
		return nil, err
	}
	return truncate(out.Items, limit), nil
}

// ListRepoIssues lists issues of owner/repo, excluding pull requests.
func (c *Client) ListRepoIssues(ctx context.Context, repo, state string, limit int) ([]Issue, error) {
	var items []Issue
	params := map[string]string{
		"state":    stateOrOpen(state),
		"per_page": strconv.Itoa(perPage(limit)),
	}
	if err := c.get(ctx, "/repos/"+repo+"/issues", params, &items); err != nil {
		return nil, err
	}

	issues := make([]Issue, 0, len(items))
	for _, it := range items {
		if !it.IsPullRequest() {
			issues = append(issues, it)
		}
	}
	return truncate(issues, limit), nil
}

// ListRepoPulls lists pull requests of owner/repo.
func (c *Client) ListRepoPulls(ctx context.Context, repo, state string, limit int) ([]PullRequest, error) {
	var pulls []PullRequest
	params := map[string]string{
		"state":    stateOrOpen(state),
		"per_page": strconv.Itoa(perPage(limit)),
	}
	if err := c.get(ctx, "/repos/"+repo+"/pulls", params, &pulls); err != nil {
		return nil, err
	}
	return truncate(pulls, limit), nil
}

func stateOrOpen(state string) string {
	switch state {
	case "open", "closed", "all":
		return state
	default:
		return "open"
	}
}

func perPage(limit int) int {
	if limit <= 0 || limit > maxPerPage {
		return maxPerPage
	}
	return limit
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
