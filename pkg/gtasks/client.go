package gtasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// Client wraps the Google Tasks API service bound to one task list.
type Client struct {
	service  *tasks.Service
	listName string

	mu     sync.Mutex
	listID string
}

// New binds a Tasks client to the list named listName. opts carry the
// credentials, usually option.WithTokenSource.
func New(ctx context.Context, listName string, opts ...option.ClientOption) (*Client, error) {
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gtasks: new service: %w", err)
	}
	return &Client{service: svc, listName: listName}, nil
}

// EnsureTaskList returns the ID of the configured list, creating it if absent.
// The ID is cached after the first successful lookup.
func (c *Client) EnsureTaskList(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.listID != "" {
		return c.listID, nil
	}

	lists, err := c.service.Tasklists.List().Context(ctx).MaxResults(100).Do()
	if err != nil {
		return "", fmt.Errorf("failed to list task lists: %w", err)
	}
	for _, l := range lists.Items {
		if l.Title == c.listName {
			c.listID = l.Id
			return c.listID, nil
		}
	}

	created, err := c.service.Tasklists.Insert(&tasks.TaskList{Title: c.listName}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create task list %q: %w", c.listName, err)
	}
	c.listID = created.Id
	return c.listID, nil
}

// ListTasks returns tasks in API order.
func (c *Client) ListTasks(ctx context.Context, req ListTasksRequest) ([]Task, error) {
	listID, err := c.EnsureTaskList(ctx)
	if err != nil {
		return nil, err
	}

	call := c.service.Tasks.List(listID).
		Context(ctx).
		ShowCompleted(req.ShowCompleted).
		ShowHidden(req.ShowCompleted)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := make([]Task, 0, len(resp.Items))
	for _, item := range resp.Items {
		out = append(out, toTask(item))
	}
	return out, nil
}

// CreateTask inserts a task. The API keeps only the date part of Due.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	listID, err := c.EnsureTaskList(ctx)
	if err != nil {
		return nil, err
	}

	item := &tasks.Task{Title: req.Title, Notes: req.Notes}
	if req.Due != nil {
		item.Due = req.Due.UTC().Format(time.RFC3339)
	}

	created, err := c.service.Tasks.Insert(listID, item).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	t := toTask(created)
	return &t, nil
}

// UpdateStatus sets the task status. Reopening clears the completion time.
func (c *Client) UpdateStatus(ctx context.Context, taskID, status string) (*Task, error) {
	listID, err := c.EnsureTaskList(ctx)
	if err != nil {
		return nil, err
	}

	patch := &tasks.Task{Status: status}
	if status == StatusNeedsAction {
		patch.NullFields = []string{"Completed"}
	}

	updated, err := c.service.Tasks.Patch(listID, taskID, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	t := toTask(updated)
	return &t, nil
}

// DeleteTask removes a task by ID.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	listID, err := c.EnsureTaskList(ctx)
	if err != nil {
		return err
	}
	if err := c.service.Tasks.Delete(listID, taskID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func toTask(item *tasks.Task) Task {
	t := Task{
		ID:     item.Id,
		Title:  item.Title,
		Notes:  item.Notes,
		Status: item.Status,
	}
	if item.Due != "" {
		if due, err := time.Parse(time.RFC3339, item.Due); err == nil {
			t.Due = &due
		}
	}
	if item.Completed != nil && *item.Completed != "" {
		if done, err := time.Parse(time.RFC3339, *item.Completed); err == nil {
			t.Completed = &done
		}
	}
	if item.Updated != "" {
		t.Updated, _ = time.Parse(time.RFC3339, item.Updated)
	}
	return t
}
