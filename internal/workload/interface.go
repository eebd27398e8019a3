package workload

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Collect reads every source concurrently. It never fails as a whole:
	// a failing source is recorded in Collection.Errors.
	Collect(ctx context.Context) Collection
	Summarize(c Collection) DailySummary
	Analyze(c Collection) Analysis
	Dashboard(ctx context.Context) Dashboard
}

// TaskSource returns the user's open tasks.
type TaskSource interface {
	PendingTasks(ctx context.Context) ([]PendingTask, error)
}

// CalendarSource returns the timed events of one day. day is midnight in the
// user's timezone.
type CalendarSource interface {
	EventsOn(ctx context.Context, day time.Time) ([]ScheduledEvent, error)
}

// IssueSource returns the user's open issues and pull requests.
type IssueSource interface {
	OpenWork(ctx context.Context) (IssueLoad, error)
}
