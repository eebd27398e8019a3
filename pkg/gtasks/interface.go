package gtasks

import "context"

// ITasks is the subset of the Tasks API used by DevFlow. Every call
// operates on the list named in Config.TaskListName, created on first use.
type ITasks interface {
	ListTasks(ctx context.Context, req ListTasksRequest) ([]Task, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error)
	UpdateStatus(ctx context.Context, taskID, status string) (*Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

var _ ITasks = (*Client)(nil)
