package tools

import (
	"context"
	"fmt"
	"strings"

	"devflow/internal/agent"
	"devflow/pkg/github"
	pkgLog "devflow/pkg/log"
)

const (
	maxListedItems = 15
	unknownRepo    = "Unknown Repo"
)

var validStates = map[string]bool{"open": true, "closed": true, "all": true}

// IssueItem is one issue or pull request line of a GitHub listing.
type IssueItem struct {
	Number int    `json:"number"`
	Repo   string `json:"repo,omitempty"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

type GitHubListOutput struct {
	Result
	Items []IssueItem `json:"items"`
}

func repoName(i github.Issue) string {
	if name := i.RepoFullName(); name != "" {
		return name
	}
	return unknownRepo
}

// searchMine runs a search qualified by the authenticated login.
func searchMine(ctx context.Context, gh GitHubClient, qualifier string) ([]github.Issue, error) {
	user, err := gh.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving github user: %w", err)
	}
	return gh.SearchIssues(ctx, fmt.Sprintf(qualifier, user.Login), maxListedItems)
}

type repoInput struct {
	RepoName string `json:"repo_name"`
	State    string `json:"state"`
}

func (in *repoInput) normalize() error {
	in.RepoName = strings.TrimSpace(in.RepoName)
	if strings.Count(in.RepoName, "/") != 1 {
		return fmt.Errorf("%w: repo_name must be 'owner/repo'", ErrInvalidInput)
	}
	in.State = strings.ToLower(strings.TrimSpace(in.State))
	if in.State == "" {
		in.State = "open"
	}
	if !validStates[in.State] {
		return fmt.Errorf("%w: state must be open, closed or all", ErrInvalidInput)
	}
	return nil
}

func repoParameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{
		"repo_name": schemaString("Repository in 'owner/repo' form"),
		"state": map[string]interface{}{
			"type":        "string",
			"description": "Item state, default open",
			"enum":        []string{"open", "closed", "all"},
		},
	}, "repo_name")
}

type GetMyAssignedIssuesTool struct {
	github GitHubClient
	l      pkgLog.Logger
}

func NewGetMyAssignedIssuesTool(gh GitHubClient, l pkgLog.Logger) *GetMyAssignedIssuesTool {
	return &GetMyAssignedIssuesTool{github: gh, l: l}
}

func (t *GetMyAssignedIssuesTool) Name() string {
	return "get_my_assigned_issues"
}

func (t *GetMyAssignedIssuesTool) Description() string {
	return "Get open GitHub issues assigned to me across all repositories. Use for 'what is on my plate?'."
}

func (t *GetMyAssignedIssuesTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{})
}

func (t *GetMyAssignedIssuesTool) Execute(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	if t.github == nil {
		return nil, ErrGitHubUnavailable
	}

	issues, err := searchMine(ctx, t.github, "assignee:%s is:issue is:open")
	if err != nil {
		t.l.Errorf(ctx, "get_my_assigned_issues: %v", err)
		return nil, err
	}

	out := GitHubListOutput{Items: []IssueItem{}}
	if len(issues) == 0 {
		out.Summary = "✨ You have no open assigned issues on GitHub."
		return out, nil
	}

	lines := make([]string, 0, len(issues))
	for _, i := range issues {
		repo := repoName(i)
		out.Items = append(out.Items, IssueItem{Number: i.Number, Repo: repo, Title: i.Title, URL: i.HTMLURL})
		lines = append(lines, fmt.Sprintf("🔴 **#%d** in %s: %s\n   - [View Issue](%s)", i.Number, repo, i.Title, i.HTMLURL))
	}
	out.Summary = "## 📌 Your Assigned Issues\n\n" + strings.Join(lines, "\n")
	return out, nil
}

type GetMyPullRequestsTool struct {
	github GitHubClient
	l      pkgLog.Logger
}

func NewGetMyPullRequestsTool(gh GitHubClient, l pkgLog.Logger) *GetMyPullRequestsTool {
	return &GetMyPullRequestsTool{github: gh, l: l}
}

func (t *GetMyPullRequestsTool) Name() string {
	return "get_my_pull_requests"
}

func (t *GetMyPullRequestsTool) Description() string {
	return "Get my open pull requests on GitHub. Use to check review status."
}

func (t *GetMyPullRequestsTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{})
}

func (t *GetMyPullRequestsTool) Execute(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	if t.github == nil {
		return nil, ErrGitHubUnavailable
	}

	prs, err := searchMine(ctx, t.github, "author:%s is:pr is:open")
	if err != nil {
		t.l.Errorf(ctx, "get_my_pull_requests: %v", err)
		return nil, err
	}

	out := GitHubListOutput{Items: []IssueItem{}}
	if len(prs) == 0 {
		out.Summary = "✨ You have no open pull requests."
		return out, nil
	}

	lines := make([]string, 0, len(prs))
	for _, pr := range prs {
		repo := repoName(pr)
		out.Items = append(out.Items, IssueItem{Number: pr.Number, Repo: repo, Title: pr.Title, URL: pr.HTMLURL})
		lines = append(lines, fmt.Sprintf("⏳ **#%d** in %s: %s\n   - [View PR](%s)", pr.Number, repo, pr.Title, pr.HTMLURL))
	}
	out.Summary = "## 🔀 Your Pull Requests\n\n" + strings.Join(lines, "\n")
	return out, nil
}

type ListRepoIssuesTool struct {
	github GitHubClient
	l      pkgLog.Logger
}

func NewListRepoIssuesTool(gh GitHubClient, l pkgLog.Logger) *ListRepoIssuesTool {
	return &ListRepoIssuesTool{github: gh, l: l}
}

func (t *ListRepoIssuesTool) Name() string {
	return "list_repo_issues"
}

func (t *ListRepoIssuesTool) Description() string {
	return "List issues of a GitHub repository."
}

func (t *ListRepoIssuesTool) Parameters() map[string]interface{} {
	return repoParameters()
}

func (t *ListRepoIssuesTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	if t.github == nil {
		return nil, ErrGitHubUnavailable
	}

	var params repoInput
	if err := decode(input, &params); err != nil {
		return nil, err
	}
	if err := params.normalize(); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "list_repo_issues: %s state=%s", params.RepoName, params.State)

	issues, err := t.github.ListRepoIssues(ctx, params.RepoName, params.State, maxListedItems)
	if err != nil {
		t.l.Errorf(ctx, "list_repo_issues: %v", err)
		return nil, fmt.Errorf("listing issues of %s: %w", params.RepoName, err)
	}

	out := GitHubListOutput{Items: []IssueItem{}}
	if len(issues) == 0 {
		out.Summary = fmt.Sprintf("No %s issues found in %s.", params.State, params.RepoName)
		return out, nil
	}

	lines := make([]string, 0, len(issues))
	for _, i := range issues {
		out.Items = append(out.Items, IssueItem{Number: i.Number, Repo: params.RepoName, Title: i.Title, URL: i.HTMLURL})
		lines = append(lines, fmt.Sprintf("- **#%d**: %s ([Link](%s))", i.Number, i.Title, i.HTMLURL))
	}
	out.Summary = fmt.Sprintf("### 🐛 Issues in %s\n\n", params.RepoName) + strings.Join(lines, "\n")
	return out, nil
}

type ListPullRequestsTool struct {
	github GitHubClient
	l      pkgLog.Logger
}

func NewListPullRequestsTool(gh GitHubClient, l pkgLog.Logger) *ListPullRequestsTool {
	return &ListPullRequestsTool{github: gh, l: l}
}

func (t *ListPullRequestsTool) Name() string {
	return "list_pull_requests"
}

func (t *ListPullRequestsTool) Description() string {
	return "List pull requests of a GitHub repository."
}

func (t *ListPullRequestsTool) Parameters() map[string]interface{} {
	return repoParameters()
}

func (t *ListPullRequestsTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	if t.github == nil {
		return nil, ErrGitHubUnavailable
	}

	var params repoInput
	if err := decode(input, &params); err != nil {
		return nil, err
	}
	if err := params.normalize(); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "list_pull_requests: %s state=%s", params.RepoName, params.State)

	pulls, err := t.github.ListRepoPulls(ctx, params.RepoName, params.State, maxListedItems)
	if err != nil {
		t.l.Errorf(ctx, "list_pull_requests: %v", err)
		return nil, fmt.Errorf("listing pull requests of %s: %w", params.RepoName, err)
	}

	out := GitHubListOutput{Items: []IssueItem{}}
	if len(pulls) == 0 {
		out.Summary = fmt.Sprintf("No %s PRs found in %s.", params.State, params.RepoName)
		return out, nil
	}

	lines := make([]string, 0, len(pulls))
	for _, pr := range pulls {
		out.Items = append(out.Items, IssueItem{Number: pr.Number, Repo: params.RepoName, Title: pr.Title, URL: pr.HTMLURL})
		lines = append(lines, fmt.Sprintf("- **#%d**: %s ([Link](%s))", pr.Number, pr.Title, pr.HTMLURL))
	}
	out.Summary = fmt.Sprintf("### 🔀 Pull Requests in %s\n\n", params.RepoName) + strings.Join(lines, "\n")
	return out, nil
}

var (
	_ agent.Tool = (*GetMyAssignedIssuesTool)(nil)
	_ agent.Tool = (*GetMyPullRequestsTool)(nil)
	_ agent.Tool = (*ListRepoIssuesTool)(nil)
	_ agent.Tool = (*ListPullRequestsTool)(nil)
)
