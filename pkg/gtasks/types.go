package gtasks

import "time"

// Task statuses defined by the Tasks API.
const (
	StatusNeedsAction = "needsAction"
	StatusCompleted   = "completed"
)

// Task is a simplified Google Tasks item.
type Task struct {
	ID        string
	Title     string
	Notes     string
	Status    string
	Due       *time.Time
	Completed *time.Time
	Updated   time.Time
}

// IsCompleted reports whether the task is done.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// CreateTaskRequest is the input for inserting a task.
type CreateTaskRequest struct {
	Title string
	Notes string
	Due   *time.Time
}

// ListTasksRequest filters a task list.
type ListTasksRequest struct {
	ShowCompleted bool
	MaxResults    int64
}
