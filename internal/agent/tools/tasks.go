package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"devflow/internal/agent"
	"devflow/internal/agent/validator"
	"devflow/pkg/datemath"
	"devflow/pkg/gtasks"
	pkgLog "devflow/pkg/log"
)

const (
	maxListedTasks      = 100
	maxPrioritizedTasks = 10
	dueSoonDays         = 3
)

// Task status filters accepted by list_tasks.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusAll       = "all"
)

var priorityEmoji = map[string]string{
	validator.PriorityLow:      "🟢",
	validator.PriorityMedium:   "🟡",
	validator.PriorityHigh:     "🟠",
	validator.PriorityCritical: "🔴",
}

const unknownPriorityEmoji = "⚪"

// priorityScore ranks a task by the emoji prefix of its title.
func priorityScore(title string) int {
	switch {
	case strings.Contains(title, "🔴"):
		return 4
	case strings.Contains(title, "🟠"):
		return 3
	case strings.Contains(title, "🟡"):
		return 2
	default:
		return 1
	}
}

// TaskOptions are shared by every task tool.
type TaskOptions struct {
	Clock  Clock
	Parser *datemath.Parser
}

// findTask returns the first task whose title contains query, case-insensitively.
func findTask(tasks []gtasks.Task, query string) (gtasks.Task, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return gtasks.Task{}, false
	}
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) {
			return t, true
		}
	}
	return gtasks.Task{}, false
}

func isOverdue(t gtasks.Task, today time.Time) bool {
	return !t.IsCompleted() && t.Due != nil && dueDay(*t.Due, today.Location()).Before(today)
}

// dueDay maps a Tasks API due date (midnight UTC) onto the local calendar day.
func dueDay(due time.Time, loc *time.Location) time.Time {
	due = due.UTC()
	return time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
}

type CreateTaskTool struct {
	tasks TasksClient
	opts  TaskOptions
	l     pkgLog.Logger
}

func NewCreateTaskTool(tasks TasksClient, opts TaskOptions, l pkgLog.Logger) *CreateTaskTool {
	return &CreateTaskTool{tasks: tasks, opts: opts, l: l}
}

func (t *CreateTaskTool) Name() string {
	return validator.ToolCreateTask
}

func (t *CreateTaskTool) Description() string {
	return "Create a development task in Google Tasks with a priority and an optional time estimate."
}

func (t *CreateTaskTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{
		validator.ArgTitle: schemaString("Task title"),
		validator.ArgPriority: map[string]interface{}{
			"type":        "string",
			"description": "Task priority, default medium",
			"enum": []string{
				validator.PriorityLow, validator.PriorityMedium,
				validator.PriorityHigh, validator.PriorityCritical,
			},
		},
		validator.ArgEstimatedHours: schemaNumber("Estimated hours to complete"),
		"description":               schemaString("Task description"),
		"due_date":                  schemaString("Due date: 'today', 'tomorrow', 'next friday' or YYYY-MM-DD"),
	}, validator.ArgTitle)
}

type CreateTaskInput struct {
	Title          string    `json:"title"`
	Priority       string    `json:"priority"`
	EstimatedHours flexFloat `json:"estimated_hours"`
	Description    string    `json:"description"`
	DueDate        string    `json:"due_date"`
}

type CreateTaskOutput struct {
	Result
	TaskID   string     `json:"task_id"`
	Title    string     `json:"title"`
	Priority string     `json:"priority"`
	Due      *time.Time `json:"due,omitempty"`
}

func (t *CreateTaskTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	if t.tasks == nil {
		return nil, ErrTasksUnavailable
	}

	var params CreateTaskInput
	if err := decode(input, &params); err != nil {
		return nil, err
	}
	priority := strings.ToLower(params.Priority)
	if priority == "" {
		priority = validator.DefaultPriority
	}
	emoji, ok := priorityEmoji[priority]
	if !ok {
		emoji = unknownPriorityEmoji
	}

	notes := gtasks.FormatNotes(params.Description, gtasks.Metadata{
		Priority:       priority,
		EstimatedHours: params.EstimatedHours.Value,
		HasEstimate:    params.EstimatedHours.Set,
	})

	req := gtasks.CreateTaskRequest{
		Title: emoji + " " + params.Title,
		Notes: notes,
	}
	if params.DueDate != "" && t.opts.Parser != nil {
		if day, err := t.opts.Parser.Parse(params.DueDate, t.opts.Clock.now()); err == nil {
			due := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
			req.Due = &due
		} else {
			t.l.Warnf(ctx, "create_task: ignoring due date %q: %v", params.DueDate, err)
		}
	}

	t.l.Infof(ctx, "create_task: %q priority=%s", params.Title, priority)

	task, err := t.tasks.CreateTask(ctx, req)
	if err != nil {
		t.l.Errorf(ctx, "create_task: failed to create task: %v", err)
		return nil, fmt.Errorf("creating task: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Task created!\n\n%s %s\nPriority: %s\n", emoji, params.Title, priority)
	if params.EstimatedHours.Set {
		fmt.Fprintf(&b, "Estimated: %sh\n", formatHours(params.EstimatedHours.Value))
	}
	fmt.Fprintf(&b, "ID: %s...", shortID(task.ID))

	return CreateTaskOutput{
		Result:   Result{Summary: b.String()},
		TaskID:   task.ID,
		Title:    task.Title,
		Priority: priority,
		Due:      req.Due,
	}, nil
}

type ListTasksTool struct {
	tasks TasksClient
	l     pkgLog.Logger
}

func NewListTasksTool(tasks TasksClient, l pkgLog.Logger) *ListTasksTool {
	return &ListTasksTool{tasks: tasks, l: l}
}

func (t *ListTasksTool) Name() string {
	return "list_tasks"
}

func (t *ListTasksTool) Description() string {
	return "List tasks from Google Tasks, filtered by status."
}

func (t *ListTasksTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{
		"status": map[string]interface{}{
			"type":        "string",
			"description": "Which tasks to show, default pending",
			"enum":        []string{StatusPending, StatusCompleted, StatusAll},
		},
	})
}

type ListTasksInput struct {
	Status string `json:"status"`
}

type TaskItem struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Completed      bool       `json:"completed"`
	Priority       string     `json:"priority,omitempty"`
	EstimatedHours float64    `json:"estimated_hours,omitempty"`
	Due            *time.Time `json:"due,omitempty"`
}

type ListTasksOutput struct {
	Result
	Tasks []TaskItem `json:"tasks"`
}

func (t *ListTasksTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	if t.tasks == nil {
		return nil, ErrTasksUnavailable
	}

	var params ListTasksInput
	if err := decode(input, &params); err != nil {
		return nil, err
	}
	status := strings.ToLower(params.Status)
	switch status {
	case "":
		status = StatusPending
	case StatusPending, StatusCompleted, StatusAll:
	default:
		return nil, fmt.Errorf("%w: status must be pending, completed or all", ErrInvalidInput)
	}

	t.l.Infof(ctx, "list_tasks: status=%s", status)

	tasks, err := t.tasks.ListTasks(ctx, gtasks.ListTasksRequest{
		ShowCompleted: status != StatusPending,
		MaxResults:    maxListedTasks,
	})
	if err != nil {
		t.l.Errorf(ctx, "list_tasks: failed to list tasks: %v", err)
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	out := ListTasksOutput{Tasks: []TaskItem{}}
	for _, task := range tasks {
		switch {
		case status == StatusPending && task.IsCompleted():
			continue
		case status == StatusCompleted && !task.IsCompleted():
			continue
		}
		meta := gtasks.ParseNotes(task.Notes)
		out.Tasks = append(out.Tasks, TaskItem{
			ID:             task.ID,
			Title:          task.Title,
			Completed:      task.IsCompleted(),
			Priority:       meta.Priority,
			EstimatedHours: meta.EstimatedHours,
			Due:            task.Due,
		})
	}

	if len(out.Tasks) == 0 {
		out.Summary = "📝 No tasks found."
		return out, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Tasks (%d):\n\n", len(out.Tasks))
	for _, item := range out.Tasks {
		statusEmoji := "⏳"
		if item.Completed {
			statusEmoji = "✅"
		}
		fmt.Fprintf(&b, "%s %s\n", statusEmoji, item.Title)
		if item.Priority != "" {
			fmt.Fprintf(&b, "   Priority: %s\n", item.Priority)
		}
		if item.EstimatedHours > 0 {
			fmt.Fprintf(&b, "   Estimated: %sh\n", formatHours(item.EstimatedHours))
		}
		if item.Due != nil {
			fmt.Fprintf(&b, "   📅 Due: %s\n", item.Due.UTC().Format(dayLayout))
		}
		b.WriteString("\n")
	}
	out.Summary = strings.TrimSpace(b.String())

	return out, nil
}

type UpdateTaskStatusTool struct {
	tasks TasksClient
	l     pkgLog.Logger
}

func NewUpdateTaskStatusTool(tasks TasksClient, l pkgLog.Logger) *UpdateTaskStatusTool {
	return &UpdateTaskStatusTool{tasks: tasks, l: l}
}

func (t *UpdateTaskStatusTool) Name() string {
	return "update_task_status"
}

func (t *UpdateTaskStatusTool) Description() string {
	return "Mark a task as completed or pending. The title may be a partial match."
}

func (t *UpdateTaskStatusTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{
		"task_title": schemaString("Title of the task, or part of it"),
		"completed": map[string]interface{}{
			"type":        "boolean",
			"description": "true to complete, false to reopen. Default true.",
		},
	}, "task_title")
}

type UpdateTaskStatusInput struct {
	TaskTitle string   `json:"task_title"`
	Completed flexBool `json:"completed"`
}

type UpdateTaskStatusOutput struct {
	Result
	Found  bool   `json:"found"`
	TaskID string `json:"task_id,omitempty"`
	Status string `json:"status,omitempty"`
}

func (t *UpdateTaskStatusTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	if t.tasks == nil {
		return nil, ErrTasksUnavailable
	}

	var params UpdateTaskStatusInput
	if err := decode(input, &params); err != nil {
		return nil, err
	}
	completed := !params.Completed.Set || params.Completed.Value

	tasks, err := t.tasks.ListTasks(ctx, gtasks.ListTasksRequest{ShowCompleted: true, MaxResults: maxListedTasks})
	if err != nil {
		t.l.Errorf(ctx, "update_task_status: failed to list tasks: %v", err)
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	task, ok := findTask(tasks, params.TaskTitle)
	if !ok {
		return UpdateTaskStatusOutput{Result: Result{Summary: fmt.Sprintf("❌ Task not found: %s", params.TaskTitle)}}, nil
	}

	status, label := gtasks.StatusCompleted, "completed"
	if !completed {
		status, label = gtasks.StatusNeedsAction, "pending"
	}

	t.l.Infof(ctx, "update_task_status: %s -> %s", task.ID, status)

	if _, err := t.tasks.UpdateStatus(ctx, task.ID, status); err != nil {
		t.l.Errorf(ctx, "update_task_status: failed to update %s: %v", task.ID, err)
		return nil, fmt.Errorf("updating task: %w", err)
	}

	return UpdateTaskStatusOutput{
		Result: Result{Summary: fmt.Sprintf("✅ Task marked as %s: %s", label, task.Title)},
		Found:  true,
		TaskID: task.ID,
		Status: status,
	}, nil
}

type DeleteTaskTool struct {
	tasks TasksClient
	l     pkgLog.Logger
}

func NewDeleteTaskTool(tasks TasksClient, l pkgLog.Logger) *DeleteTaskTool {
	return &DeleteTaskTool{tasks: tasks, l: l}
}

func (t *DeleteTaskTool) Name() string {
	return "delete_task"
}

func (t *DeleteTaskTool) Description() string {
	return "Delete a task. The title may be a partial match."
}

func (t *DeleteTaskTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{
		"task_title": schemaString("Title of the task, or part of it"),
	}, "task_title")
}

type DeleteTaskInput struct {
	TaskTitle string `json:"task_title"`
}

type DeleteTaskOutput struct {
	Result
	Deleted bool   `json:"deleted"`
	TaskID  string `json:"task_id,omitempty"`
}

func (t *DeleteTaskTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	if t.tasks == nil {
		return nil, ErrTasksUnavailable
	}

	var params DeleteTaskInput
	if err := decode(input, &params); err != nil {
		return nil, err
	}

	tasks, err := t.tasks.ListTasks(ctx, gtasks.ListTasksRequest{ShowCompleted: true, MaxResults: maxListedTasks})
	if err != nil {
		t.l.Errorf(ctx, "delete_task: failed to list tasks: %v", err)
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	task, ok := findTask(tasks, params.TaskTitle)
	if !ok {
		return DeleteTaskOutput{Result: Result{Summary: fmt.Sprintf("❌ Task not found: %s", params.TaskTitle)}}, nil
	}

	t.l.Infof(ctx, "delete_task: %s (%s)", task.ID, task.Title)

	if err := t.tasks.DeleteTask(ctx, task.ID); err != nil {
		t.l.Errorf(ctx, "delete_task: failed to delete %s: %v", task.ID, err)
		return nil, fmt.Errorf("deleting task: %w", err)
	}

	return DeleteTaskOutput{
		Result:  Result{Summary: fmt.Sprintf("✅ Task deleted: %s", task.Title)},
		Deleted: true,
		TaskID:  task.ID,
	}, nil
}

type GetTaskStatisticsTool struct {
	tasks TasksClient
	opts  TaskOptions
	l     pkgLog.Logger
}

func NewGetTaskStatisticsTool(tasks TasksClient, opts TaskOptions, l pkgLog.Logger) *GetTaskStatisticsTool {
	return &GetTaskStatisticsTool{tasks: tasks, opts: opts, l: l}
}

func (t *GetTaskStatisticsTool) Name() string {
	return "get_task_statistics"
}

func (t *GetTaskStatisticsTool) Description() string {
	return "Get task statistics: totals, completed, pending, overdue and completion rate."
}

func (t *GetTaskStatisticsTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{})
}

type TaskStatistics struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	Overdue        int     `json:"overdue"`
	CompletionRate float64 `json:"completion_rate"`
}

type GetTaskStatisticsOutput struct {
	Result
	TaskStatistics
}

// computeStatistics counts tasks relative to the local day of now.
func computeStatistics(tasks []gtasks.Task, now time.Time) TaskStatistics {
	today := startOfDay(now)
	var s TaskStatistics
	for _, task := range tasks {
		s.Total++
		if task.IsCompleted() {
			s.Completed++
			continue
		}
		s.Pending++
		if isOverdue(task, today) {
			s.Overdue++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}

func (t *GetTaskStatisticsTool) Execute(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	if t.tasks == nil {
		return nil, ErrTasksUnavailable
	}

	tasks, err := t.tasks.ListTasks(ctx, gtasks.ListTasksRequest{ShowCompleted: true, MaxResults: maxListedTasks})
	if err != nil {
		t.l.Errorf(ctx, "get_task_statistics: failed to list tasks: %v", err)
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	stats := computeStatistics(tasks, t.opts.Clock.now())
	out := GetTaskStatisticsOutput{TaskStatistics: stats}
	if stats.Total == 0 {
		out.Summary = "📊 No tasks found."
		return out, nil
	}

	out.Summary = fmt.Sprintf("📊 Task Statistics:\n\nTotal Tasks: %d\n✅ Completed: %d\n⏳ Pending: %d\n⚠️ Overdue: %d\n\nCompletion Rate: %.1f%%",
		stats.Total, stats.Completed, stats.Pending, stats.Overdue, stats.CompletionRate)
	return out, nil
}

type PrioritizeTasksTool struct {
	tasks TasksClient
	opts  TaskOptions
	l     pkgLog.Logger
}

func NewPrioritizeTasksTool(tasks TasksClient, opts TaskOptions, l pkgLog.Logger) *PrioritizeTasksTool {
	return &PrioritizeTasksTool{tasks: tasks, opts: opts, l: l}
}

func (t *PrioritizeTasksTool) Name() string {
	return "prioritize_tasks"
}

func (t *PrioritizeTasksTool) Description() string {
	return "Recommend the order to work on pending tasks, by priority then due date."
}

func (t *PrioritizeTasksTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{})
}

type RankedTask struct {
	Title   string     `json:"title"`
	Score   int        `json:"score"`
	Due     *time.Time `json:"due,omitempty"`
	DueDays *int       `json:"due_in_days,omitempty"`
}

type PrioritizeTasksOutput struct {
	Result
	Tasks []RankedTask `json:"tasks"`
}

var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// rankTasks orders pending tasks by descending priority score, then by due
// date with undated tasks last. The sort is stable.
func rankTasks(tasks []gtasks.Task) []gtasks.Task {
	pending := make([]gtasks.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.IsCompleted() {
			pending = append(pending, task)
		}
	}
	due := func(t gtasks.Task) time.Time {
		if t.Due == nil {
			return farFuture
		}
		return *t.Due
	}
	sort.SliceStable(pending, func(i, j int) bool {
		si, sj := priorityScore(pending[i].Title), priorityScore(pending[j].Title)
		if si != sj {
			return si > sj
		}
		return due(pending[i]).Before(due(pending[j]))
	})
	return pending
}

func (t *PrioritizeTasksTool) Execute(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	if t.tasks == nil {
		return nil, ErrTasksUnavailable
	}

	tasks, err := t.tasks.ListTasks(ctx, gtasks.ListTasksRequest{MaxResults: maxListedTasks})
	if err != nil {
		t.l.Errorf(ctx, "prioritize_tasks: failed to list tasks: %v", err)
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	ranked := rankTasks(tasks)
	out := PrioritizeTasksOutput{Tasks: []RankedTask{}}
	if len(ranked) == 0 {
		out.Summary = "✨ No pending tasks! Time to plan your next sprint."
		return out, nil
	}
	if len(ranked) > maxPrioritizedTasks {
		ranked = ranked[:maxPrioritizedTasks]
	}

	now := t.opts.Clock.now()
	today := startOfDay(now)

	var b strings.Builder
	b.WriteString("🎯 Recommended Task Priority:\n\n")
	for i, task := range ranked {
		item := RankedTask{Title: task.Title, Score: priorityScore(task.Title), Due: task.Due}
		fmt.Fprintf(&b, "%d. %s\n", i+1, task.Title)
		if task.Due != nil {
			days := int(dueDay(*task.Due, now.Location()).Sub(today).Hours() / 24)
			item.DueDays = &days
			switch {
			case days < 0:
				fmt.Fprintf(&b, "   ⚠️ OVERDUE by %d days!\n", -days)
			case days == 0:
				b.WriteString("   🔥 Due TODAY!\n")
			case days <= dueSoonDays:
				fmt.Fprintf(&b, "   ⏰ Due in %d days\n", days)
			}
		}
		b.WriteString("\n")
		out.Tasks = append(out.Tasks, item)
	}
	out.Summary = strings.TrimSpace(b.String())

	return out, nil
}

var (
	_ agent.Tool = (*CreateTaskTool)(nil)
	_ agent.Tool = (*ListTasksTool)(nil)
	_ agent.Tool = (*UpdateTaskStatusTool)(nil)
	_ agent.Tool = (*DeleteTaskTool)(nil)
	_ agent.Tool = (*GetTaskStatisticsTool)(nil)
	_ agent.Tool = (*PrioritizeTasksTool)(nil)
)
