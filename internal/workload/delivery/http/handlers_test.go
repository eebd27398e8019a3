package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"devflow/internal/workload"
	"devflow/pkg/log"
)

type mockUseCase struct {
	col      workload.Collection
	collects int
}

func (m *mockUseCase) Collect(ctx context.Context) workload.Collection {
	m.collects++
	return m.col
}

func (m *mockUseCase) Summarize(c workload.Collection) workload.DailySummary {
	return workload.Summarize(c)
}

func (m *mockUseCase) Analyze(c workload.Collection) workload.Analysis {
	return workload.Analyze(c)
}

func (m *mockUseCase) Dashboard(ctx context.Context) workload.Dashboard {
	c := m.Collect(ctx)
	s := m.Summarize(c)
	return workload.Dashboard{Summary: s, Analysis: m.Analyze(c), Issues: c.IssueLoad.Issues, ProductivityScore: workload.ProductivityScore(s)}
}

func newTestRouter(uc workload.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func get(t *testing.T, r http.Handler, path string, out any) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s = %d", path, w.Code)
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestWorkloadEndpoints(t *testing.T) {
	uc := &mockUseCase{col: workload.Collection{
		Tasks: []workload.PendingTask{{Title: "t", EstimatedHours: 9, HasEstimate: true}},
		IssueLoad: workload.IssueLoad{
			Issues: []workload.Issue{{Number: 5, Repo: "acme/api", Priority: workload.PriorityHigh}},
		},
		Errors: map[workload.Source]error{workload.SourceCalendar: errors.New("calendar: timeout")},
	}}
	r := newTestRouter(uc)

	var wl workloadResp
	get(t, r, "/api/v1/workload", &wl)
	if wl.EffortLevel != "overloaded" || wl.Snapshot.TotalHours != 12 {
		t.Errorf("workload = %+v", wl)
	}
	if wl.SourceErrors["calendar"] == "" {
		t.Error("calendar failure must be reported")
	}

	var sum summaryResp
	get(t, r, "/api/v1/summary", &sum)
	if sum.TasksPending != 1 || sum.GitHubIssues != 1 || sum.EventsToday != 0 {
		t.Errorf("summary = %+v", sum)
	}

	var dash dashboardResp
	get(t, r, "/api/v1/dashboard", &dash)
	if len(dash.Issues) != 1 || dash.Workload.EffortLevel != "overloaded" {
		t.Errorf("dashboard = %+v", dash)
	}
	if dash.ProductivityScore != 85 {
		t.Errorf("productivity score = %d, want 85 for two open items", dash.ProductivityScore)
	}
	if uc.collects != 3 {
		t.Errorf("collects = %d, want one per request", uc.collects)
	}
}
