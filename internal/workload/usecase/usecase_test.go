package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"

	"devflow/internal/workload"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

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

type mockTasks struct {
	tasks []workload.PendingTask
	err   error
}

func (m *mockTasks) PendingTasks(ctx context.Context) ([]workload.PendingTask, error) {
	return m.tasks, m.err
}

type mockCalendar struct {
	events []workload.ScheduledEvent
	err    error
	block  bool
	day    time.Time
}

func (m *mockCalendar) EventsOn(ctx context.Context, day time.Time) ([]workload.ScheduledEvent, error) {
	m.day = day
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return m.events, m.err
}

type mockIssues struct {
	load workload.IssueLoad
	err  error
}

func (m *mockIssues) OpenWork(ctx context.Context) (workload.IssueLoad, error) {
	return m.load, m.err
}

var fixedNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newTestUseCase(src Sources) *implUseCase {
	return New(src, Config{
		SourceTimeout: 50 * time.Millisecond,
		Location:      time.UTC,
		Now:           func() time.Time { return fixedNow },
	}, &mockLogger{})
}

func meeting(hours int) workload.ScheduledEvent {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return workload.ScheduledEvent{Title: "meeting", Start: start, End: start.Add(time.Duration(hours) * time.Hour)}
}

func TestCollect_AllSources(t *testing.T) {
	cal := &mockCalendar{events: []workload.ScheduledEvent{meeting(2)}}
	uc := newTestUseCase(Sources{
		Tasks:    &mockTasks{tasks: []workload.PendingTask{{Title: "t", EstimatedHours: 1, HasEstimate: true}}},
		Calendar: cal,
		Issues:   &mockIssues{load: workload.IssueLoad{Issues: []workload.Issue{{Number: 1, Priority: "high"}}, PullRequests: 2}},
	})

	c := uc.Collect(context.Background())
	if len(c.Errors) != 0 {
		t.Fatalf("errors = %v", c.Errors)
	}
	if !cal.day.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("calendar asked for %v, want midnight today", cal.day)
	}

	s := uc.Analyze(c).Snapshot
	if s.TotalHours != 7 {
		t.Errorf("total = %v, want 2+1+3+1", s.TotalHours)
	}
}

func TestCollect_FailuresAreIsolated(t *testing.T) {
	tests := []struct {
		name   string
		src    Sources
		failed workload.Source
		cause  error
	}{
		{
			name: "calendar error",
			src: Sources{
				Tasks:    &mockTasks{tasks: []workload.PendingTask{{Title: "t", EstimatedHours: 2, HasEstimate: true}}},
				Calendar: &mockCalendar{err: errors.New("401 unauthorized")},
				Issues:   &mockIssues{load: workload.IssueLoad{PullRequests: 2}},
			},
			failed: workload.SourceCalendar,
		},
		{
			name: "calendar timeout",
			src: Sources{
				Tasks:    &mockTasks{tasks: []workload.PendingTask{{Title: "t", EstimatedHours: 2, HasEstimate: true}}},
				Calendar: &mockCalendar{block: true},
				Issues:   &mockIssues{load: workload.IssueLoad{PullRequests: 2}},
			},
			failed: workload.SourceCalendar,
			cause:  context.DeadlineExceeded,
		},
		{
			name: "missing calendar",
			src: Sources{
				Tasks:  &mockTasks{tasks: []workload.PendingTask{{Title: "t", EstimatedHours: 2, HasEstimate: true}}},
				Issues: &mockIssues{load: workload.IssueLoad{PullRequests: 2}},
			},
			failed: workload.SourceCalendar,
			cause:  workload.ErrSourceNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.src)
			c := uc.Collect(context.Background())

			if len(c.Errors) != 1 || !c.Failed(tt.failed) {
				t.Fatalf("errors = %v", c.Errors)
			}
			err := c.Errors[tt.failed]
			if !errors.Is(err, workload.ErrSourceUnavailable) {
				t.Errorf("error %v does not wrap ErrSourceUnavailable", err)
			}
			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Errorf("error %v does not wrap %v", err, tt.cause)
			}

			s := uc.Analyze(c).Snapshot
			if s.ScheduledHours != 0 {
				t.Errorf("scheduled hours = %v", s.ScheduledHours)
			}
			if s.PendingTaskHours != 2 || s.IssueTrackerHours != 1 || s.TotalHours != 3 {
				t.Errorf("snapshot = %+v", s)
			}
		})
	}
}

func TestCollect_EveryFailure(t *testing.T) {
	boom := errors.New("boom")
	uc := newTestUseCase(Sources{
		Tasks:    &mockTasks{err: boom},
		Calendar: &mockCalendar{err: boom},
		Issues:   &mockIssues{err: boom},
	})

	d := uc.Dashboard(context.Background())
	if d.Analysis.Snapshot.TotalHours != 0 || d.Analysis.Snapshot.Tier != workload.TierLow {
		t.Errorf("snapshot = %+v", d.Analysis.Snapshot)
	}
	if len(d.Summary.SourceErrors) != 3 {
		t.Errorf("source errors = %v", d.Summary.SourceErrors)
	}
	if d.Issues == nil {
		t.Error("issues must encode as an empty list")
	}
	if d.ProductivityScore != 100 {
		t.Errorf("productivity score = %d, want 100 with nothing read", d.ProductivityScore)
	}
}
