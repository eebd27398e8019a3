package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"devflow/internal/issues"
	"devflow/pkg/log"
)

type mockUseCase struct {
	ov    issues.Overview
	err   error
	repos []string
}

func (m *mockUseCase) Overview(ctx context.Context, repo string) (issues.Overview, error) {
	m.repos = append(m.repos, repo)
	return m.ov, m.err
}

func newTestRouter(uc issues.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))
	return r
}

func TestGitHub(t *testing.T) {
	mine := issues.Overview{
		Issues: []issues.Issue{
			{Number: 7, Repo: "acme/api", Title: "Outage", Priority: "critical", Labels: []string{"P0"}},
			{Number: 8, Repo: "acme/web", Title: "Typo", Priority: "medium"},
		},
		PullRequests:   []issues.PullRequest{{Number: 9, Repo: "acme/api", Title: "Fix outage", Status: issues.StatusDraft}},
		EstimatedHours: 6.5,
	}
	repoView := issues.Overview{Repo: "acme/api", Issues: []issues.Issue{}, PullRequests: []issues.PullRequest{}}

	tests := []struct {
		name     string
		path     string
		uc       *mockUseCase
		wantCode int
		wantRepo string
		check    func(t *testing.T, got githubResp)
	}{
		{
			name: "user view", path: "/api/v1/github", uc: &mockUseCase{ov: mine},
			wantCode: http.StatusOK, wantRepo: "",
			check: func(t *testing.T, got githubResp) {
				if got.Repo != allRepositories || len(got.Issues) != 2 || len(got.PRs) != 1 || got.EstimatedHours != 6.5 {
					t.Errorf("got %+v", got)
				}
				if got.Issues[1].Labels == nil || got.PRs[0].Status != "draft" {
					t.Errorf("items = %+v / %+v", got.Issues[1], got.PRs[0])
				}
			},
		},
		{
			name: "one repository", path: "/api/v1/github?repo=acme/api", uc: &mockUseCase{ov: repoView},
			wantCode: http.StatusOK, wantRepo: "acme/api",
			check: func(t *testing.T, got githubResp) {
				if got.Repo != "acme/api" || got.Issues == nil || got.PRs == nil || got.EstimatedHours != 0 {
					t.Errorf("got %+v", got)
				}
			},
		},
		{
			name: "bad repo", path: "/api/v1/github?repo=acme", uc: &mockUseCase{err: fmt.Errorf("%w: %q", issues.ErrInvalidRepo, "acme")},
			wantCode: http.StatusBadRequest, wantRepo: "acme",
		},
		{
			name: "no token", path: "/api/v1/github", uc: &mockUseCase{err: issues.ErrNotConfigured},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "github down", path: "/api/v1/github", uc: &mockUseCase{err: fmt.Errorf("%w: %w", issues.ErrFetchFailed, errors.New("502"))},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestRouter(tt.uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}
			if len(tt.uc.repos) != 1 || tt.uc.repos[0] != tt.wantRepo {
				t.Errorf("usecase repos = %q, want [%q]", tt.uc.repos, tt.wantRepo)
			}
			if tt.check == nil {
				return
			}
			var env struct {
				Data githubResp `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			tt.check(t, env.Data)
		})
	}
}
