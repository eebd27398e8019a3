package tasks

import "time"

// Task is a pending task with the metadata parsed from its notes.
type Task struct {
	ID             string
	Title          string
	Description    string
	Priority       string
	EstimatedHours *float64
	Due            *time.Time
	Overdue        bool
}

// Overview is the task list as the dashboard shows it. PendingCount always
// equals len(Pending) and Total is PendingCount plus Completed.
type Overview struct {
	Pending      []Task
	Total        int
	Completed    int
	PendingCount int
	Overdue      int
}
