package tools_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"devflow/internal/agent"
	"devflow/internal/agent/tools"
	"devflow/internal/agent/validator"
	"devflow/pkg/datemath"
	"devflow/pkg/gcalendar"
	"devflow/pkg/github"
	"devflow/pkg/gtasks"
)

// mockLogger
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockCalendarClient
type mockCalendarClient struct {
	events  []gcalendar.Event
	busy    []gcalendar.Period
	created gcalendar.CreateEventRequest
	listed  gcalendar.ListEventsRequest
	deleted string
	err     error
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = req
	return &gcalendar.Event{
		ID:        "evt-1",
		Summary:   req.Summary,
		Link:      "https://calendar.example/evt-1",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func (m *mockCalendarClient) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.listed = req
	return m.events, m.err
}

func (m *mockCalendarClient) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = eventID
	return m.err
}

func (m *mockCalendarClient) FreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.Period, error) {
	return m.busy, m.err
}

// mockTasksClient
type mockTasksClient struct {
	tasks   []gtasks.Task
	created gtasks.CreateTaskRequest
	updated map[string]string
	deleted string
	err     error
}

func (m *mockTasksClient) ListTasks(ctx context.Context, req gtasks.ListTasksRequest) ([]gtasks.Task, error) {
	return m.tasks, m.err
}

func (m *mockTasksClient) CreateTask(ctx context.Context, req gtasks.CreateTaskRequest) (*gtasks.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = req
	return &gtasks.Task{ID: "task-1234567890", Title: req.Title, Notes: req.Notes, Due: req.Due}, nil
}

func (m *mockTasksClient) UpdateStatus(ctx context.Context, taskID, status string) (*gtasks.Task, error) {
	if m.updated == nil {
		m.updated = map[string]string{}
	}
	m.updated[taskID] = status
	return &gtasks.Task{ID: taskID, Status: status}, m.err
}

func (m *mockTasksClient) DeleteTask(ctx context.Context, taskID string) error {
	m.deleted = taskID
	return m.err
}

// mockGitHubClient
type mockGitHubClient struct {
	issues  []github.Issue
	pulls   []github.PullRequest
	queries []string
	err     error
}

func (m *mockGitHubClient) CurrentUser(ctx context.Context) (*github.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &github.User{Login: "octocat"}, nil
}

func (m *mockGitHubClient) SearchIssues(ctx context.Context, query string, limit int) ([]github.Issue, error) {
	m.queries = append(m.queries, query)
	return m.issues, m.err
}

func (m *mockGitHubClient) ListRepoIssues(ctx context.Context, repo, state string, limit int) ([]github.Issue, error) {
	return m.issues, m.err
}

func (m *mockGitHubClient) ListRepoPulls(ctx context.Context, repo, state string, limit int) ([]github.PullRequest, error) {
	return m.pulls, m.err
}

// fixedNow is a Wednesday morning.
var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func testClock() tools.Clock {
	return tools.Clock{Location: time.UTC, Now: func() time.Time { return fixedNow }}
}

func testParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func summaryOf(t *testing.T, res interface{}) string {
	t.Helper()
	s, ok := res.(interface{ Text() string })
	if !ok {
		t.Fatalf("result %T has no summary", res)
	}
	return s.Text()
}

func TestCatalog_RegistersEveryTool(t *testing.T) {
	rules := validator.New(nil, nil)
	reg, err := tools.NewCatalog(tools.Deps{Clock: testClock(), Parser: testParser(t), Logger: &mockLogger{}}, rules)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	want := []string{
		"analyze_weekly_trends", "create_calendar_event", "create_task", "delete_calendar_event",
		"delete_task", "find_free_time_slots", "get_calendar_events", "get_my_assigned_issues",
		"get_my_pull_requests", "get_task_statistics", "list_pull_requests", "list_repo_issues",
		"list_tasks", "prioritize_tasks", "self_reflect", "update_task_status",
	}
	got := reg.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Names() = %v\nwant %v", got, want)
	}

	for _, tool := range reg.Tools() {
		if tool.Description() == "" {
			t.Errorf("%s: missing description", tool.Name())
		}
		if tool.Parameters()["type"] != "object" {
			t.Errorf("%s: parameters must be an object schema", tool.Name())
		}
	}
	if len(reg.Declarations()) != len(want) {
		t.Error("function definitions do not match catalog")
	}
}

func TestCatalog_NilClients(t *testing.T) {
	ctx := context.Background()
	catalog := tools.Catalog(tools.Deps{Clock: testClock(), Logger: &mockLogger{}})

	wantErr := map[string]error{
		"create_calendar_event":  tools.ErrCalendarUnavailable,
		"list_tasks":             tools.ErrTasksUnavailable,
		"get_my_assigned_issues": tools.ErrGitHubUnavailable,
		"self_reflect":           tools.ErrTasksUnavailable,
	}
	for _, tool := range catalog {
		want, ok := wantErr[tool.Name()]
		if !ok {
			continue
		}
		if _, err := tool.Execute(ctx, map[string]interface{}{}); !errors.Is(err, want) {
			t.Errorf("%s: error = %v, want %v", tool.Name(), err, want)
		}
	}
}

func TestResultText(t *testing.T) {
	var res interface{} = tools.ListTasksOutput{Result: tools.Result{Summary: "hello"}}
	if _, ok := res.(interface{ Text() string }); !ok {
		t.Fatal("outputs must expose Text()")
	}
	var _ agent.Tool = tools.NewListTasksTool(nil, &mockLogger{})
}
