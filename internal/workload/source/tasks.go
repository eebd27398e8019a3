package source

import (
	"context"
	"fmt"

	"devflow/internal/workload"
	"devflow/pkg/gtasks"
)

const maxTasks = 100

// TaskLister is the Google Tasks call the task source needs.
type TaskLister interface {
	ListTasks(ctx context.Context, req gtasks.ListTasksRequest) ([]gtasks.Task, error)
}

// Tasks reads open tasks and parses their notes metadata once.
type Tasks struct {
	client TaskLister
}

var _ workload.TaskSource = (*Tasks)(nil)

// NewTasks creates a task source.
func NewTasks(client TaskLister) *Tasks {
	return &Tasks{client: client}
}

// PendingTasks returns every task that is not completed.
func (s *Tasks) PendingTasks(ctx context.Context) ([]workload.PendingTask, error) {
	items, err := s.client.ListTasks(ctx, gtasks.ListTasksRequest{ShowCompleted: false, MaxResults: maxTasks})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := make([]workload.PendingTask, 0, len(items))
	for _, t := range items {
		if t.IsCompleted() {
			continue
		}
		meta := gtasks.ParseNotes(t.Notes)
		priority := meta.Priority
		if priority == "" {
			priority = workload.PriorityMedium
		}
		out = append(out, workload.PendingTask{
			Title:          t.Title,
			Priority:       priority,
			EstimatedHours: meta.EstimatedHours,
			HasEstimate:    meta.HasEstimate,
			Due:            t.Due,
		})
	}
	return out, nil
}
