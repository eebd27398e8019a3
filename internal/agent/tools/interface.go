package tools

import (
	"context"
	"time"

	"devflow/pkg/gcalendar"
	"devflow/pkg/github"
	"devflow/pkg/gtasks"
)

// CalendarClient abstracts Google Calendar for mocking.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	FreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.Period, error)
}

// TasksClient abstracts Google Tasks for mocking.
type TasksClient interface {
	ListTasks(ctx context.Context, req gtasks.ListTasksRequest) ([]gtasks.Task, error)
	CreateTask(ctx context.Context, req gtasks.CreateTaskRequest) (*gtasks.Task, error)
	UpdateStatus(ctx context.Context, taskID, status string) (*gtasks.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// GitHubClient abstracts the GitHub REST API for mocking.
type GitHubClient interface {
	CurrentUser(ctx context.Context) (*github.User, error)
	SearchIssues(ctx context.Context, query string, limit int) ([]github.Issue, error)
	ListRepoIssues(ctx context.Context, repo, state string, limit int) ([]github.Issue, error)
	ListRepoPulls(ctx context.Context, repo, state string, limit int) ([]github.PullRequest, error)
}

// Clock fixes the timezone and the notion of "now" for date-aware tools.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

func (c Clock) now() time.Time {
	loc := c.location()
	if c.Now == nil {
		return time.Now().In(loc)
	}
	return c.Now().In(loc)
}

func (c Clock) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Result is embedded in every tool output. Summary is the text the model sees.
type Result struct {
	Summary string `json:"summary"`
}

// Text returns the human summary.
func (r Result) Text() string {
	return r.Summary
}
