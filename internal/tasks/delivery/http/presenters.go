package http

import (
	"time"

	"devflow/internal/tasks"
)

type taskResp struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Priority       string   `json:"priority"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	Due            string   `json:"due,omitempty"`
	Overdue        bool     `json:"overdue"`
}

type tasksResp struct {
	Tasks     []taskResp `json:"tasks"`
	Total     int        `json:"total"`
	Completed int        `json:"completed"`
	Pending   int        `json:"pending"`
	Overdue   int        `json:"overdue"`
}

func newTasksResp(ov tasks.Overview) tasksResp {
	out := tasksResp{
		Tasks:     make([]taskResp, 0, len(ov.Pending)),
		Total:     ov.Total,
		Completed: ov.Completed,
		Pending:   ov.PendingCount,
		Overdue:   ov.Overdue,
	}
	for _, t := range ov.Pending {
		r := taskResp{
			ID:             t.ID,
			Title:          t.Title,
			Description:    t.Description,
			Priority:       t.Priority,
			EstimatedHours: t.EstimatedHours,
			Overdue:        t.Overdue,
		}
		if t.Due != nil {
			r.Due = t.Due.UTC().Format(time.DateOnly)
		}
		out.Tasks = append(out.Tasks, r)
	}
	return out
}
