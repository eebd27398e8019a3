package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"devflow/internal/workload"
	"devflow/pkg/metrics"
)

// Collect reads the three sources in parallel, each under its own timeout.
// Failures never cancel the other reads.
func (uc *implUseCase) Collect(ctx context.Context) workload.Collection {
	now := uc.now().In(uc.loc)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)

	var (
		tasks  []workload.PendingTask
		events []workload.ScheduledEvent
		load   workload.IssueLoad
	)
	var tasksErr, calendarErr, issueErr error

	var g errgroup.Group
	g.Go(func() error {
		tasksErr = uc.read(ctx, workload.SourceTasks, uc.src.Tasks == nil, func(ctx context.Context) (err error) {
			tasks, err = uc.src.Tasks.PendingTasks(ctx)
			return err
		})
		return nil
	})
	g.Go(func() error {
		calendarErr = uc.read(ctx, workload.SourceCalendar, uc.src.Calendar == nil, func(ctx context.Context) (err error) {
			events, err = uc.src.Calendar.EventsOn(ctx, day)
			return err
		})
		return nil
	})
	g.Go(func() error {
		issueErr = uc.read(ctx, workload.SourceGitHub, uc.src.Issues == nil, func(ctx context.Context) (err error) {
			load, err = uc.src.Issues.OpenWork(ctx)
			return err
		})
		return nil
	})
	_ = g.Wait()

	c := workload.Collection{Day: day, Errors: map[workload.Source]error{}}
	if tasksErr != nil {
		c.Errors[workload.SourceTasks] = tasksErr
	} else {
		c.Tasks = tasks
	}
	if calendarErr != nil {
		c.Errors[workload.SourceCalendar] = calendarErr
	} else {
		c.Events = events
	}
	if issueErr != nil {
		c.Errors[workload.SourceGitHub] = issueErr
	} else {
		c.IssueLoad = load
	}
	return c
}

// read runs fn under the source timeout. A read that outlives the timeout is
// abandoned and reported as unavailable even if fn ignores ctx.
func (uc *implUseCase) read(ctx context.Context, src workload.Source, missing bool, fn func(context.Context) error) error {
	if missing {
		metrics.SourceFailuresTotal.WithLabelValues(string(src)).Inc()
		return fmt.Errorf("%s: %w: %w", src, workload.ErrSourceUnavailable, workload.ErrSourceNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	done := make(chan error, 1)
	go func() {
		done <- fn(ctx)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	metrics.SourceDuration.WithLabelValues(string(src)).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SourceFailuresTotal.WithLabelValues(string(src)).Inc()
		uc.l.Warnf(ctx, "workload.usecase.Collect: source %s failed: %v", src, err)
		return fmt.Errorf("%s: %w: %w", src, workload.ErrSourceUnavailable, err)
	}
	return nil
}
