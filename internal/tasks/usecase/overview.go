package usecase

import (
	"context"
	"fmt"
	"time"

	"devflow/internal/tasks"
	"devflow/pkg/gtasks"
)

// Overview reads the list once, completed items included, so the counts and
// the pending items agree.
func (uc *implUseCase) Overview(ctx context.Context) (tasks.Overview, error) {
	if uc.client == nil {
		return tasks.Overview{}, tasks.ErrNotConfigured
	}

	items, err := uc.client.ListTasks(ctx, gtasks.ListTasksRequest{ShowCompleted: true, MaxResults: tasks.MaxListed})
	if err != nil {
		uc.l.Errorf(ctx, "tasks.usecase.Overview: %v", err)
		return tasks.Overview{}, fmt.Errorf("%w: %w", tasks.ErrListFailed, err)
	}

	now := uc.now().In(uc.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)

	out := tasks.Overview{Pending: []tasks.Task{}}
	for _, item := range items {
		out.Total++
		if item.IsCompleted() {
			out.Completed++
			continue
		}
		t := toTask(item, today)
		if t.Overdue {
			out.Overdue++
		}
		out.Pending = append(out.Pending, t)
	}
	out.PendingCount = len(out.Pending)
	return out, nil
}

func toTask(item gtasks.Task, today time.Time) tasks.Task {
	meta := gtasks.ParseNotes(item.Notes)
	t := tasks.Task{
		ID:          item.ID,
		Title:       item.Title,
		Description: gtasks.Description(item.Notes),
		Priority:    meta.Priority,
		Due:         item.Due,
	}
	if t.Priority == "" {
		t.Priority = tasks.DefaultPriority
	}
	if meta.HasEstimate {
		hours := meta.EstimatedHours
		t.EstimatedHours = &hours
	}
	if item.Due != nil {
		// Due dates are whole days at midnight UTC.
		due := item.Due.UTC()
		t.Overdue = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, today.Location()).Before(today)
	}
	return t
}
