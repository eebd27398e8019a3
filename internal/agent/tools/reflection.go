package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"devflow/internal/agent"
	"devflow/pkg/gcalendar"
	"devflow/pkg/gtasks"
	pkgLog "devflow/pkg/log"
)

const (
	reportRule           = "============================================================"
	heavyScheduleHours   = 8.0
	focusScheduleHours   = 4.0
	lightScheduleHours   = 2.0
	tooManyPendingTasks  = 10
	reflectionTopN       = 3
	recentCompletionsTop = 5
	trendWindowDays      = 7
)

// stripPriority removes the priority emoji prefix from a task title.
func stripPriority(title string) string {
	for _, e := range []string{"🔴", "🟠", "🟡", "🟢", "⚪"} {
		title = strings.ReplaceAll(title, e, "")
	}
	return strings.TrimSpace(title)
}

// Reflection is the structured part of a self_reflect report.
type Reflection struct {
	TaskStatistics
	InProgress      int      `json:"in_progress"`
	Blocked         int      `json:"blocked"`
	HighPriority    int      `json:"high_priority"`
	EventsToday     int      `json:"events_today"`
	ScheduledHours  float64  `json:"scheduled_hours"`
	Recommendations []string `json:"recommendations"`
	NextTask        string   `json:"next_task,omitempty"`
}

type SelfReflectOutput struct {
	Result
	Reflection
}

type SelfReflectTool struct {
	tasks    TasksClient
	calendar CalendarClient
	opts     CalendarOptions
	l        pkgLog.Logger
}

// NewSelfReflectTool builds the reflection tool. calendar may be nil, in which
// case the report treats the day as unscheduled.
func NewSelfReflectTool(tasks TasksClient, calendar CalendarClient, opts CalendarOptions, l pkgLog.Logger) *SelfReflectTool {
	return &SelfReflectTool{tasks: tasks, calendar: calendar, opts: opts, l: l}
}

func (t *SelfReflectTool) Name() string {
	return "self_reflect"
}

func (t *SelfReflectTool) Description() string {
	return "Reflect on productivity: task completion, blockers, priorities, today's schedule and recommendations."
}

func (t *SelfReflectTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{})
}

func (t *SelfReflectTool) Execute(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	if t.tasks == nil {
		return nil, ErrTasksUnavailable
	}

	tasks, err := t.tasks.ListTasks(ctx, gtasks.ListTasksRequest{ShowCompleted: true, MaxResults: maxListedTasks})
	if err != nil {
		t.l.Errorf(ctx, "self_reflect: failed to list tasks: %v", err)
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	now := t.opts.Clock.now()
	today := startOfDay(now)

	var events []gcalendar.Event
	if t.calendar != nil {
		events, err = t.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: t.opts.calendarID(),
			TimeMin:    today,
			TimeMax:    today.AddDate(0, 0, 1),
		})
		if err != nil {
			t.l.Errorf(ctx, "self_reflect: failed to list events: %v", err)
			return nil, fmt.Errorf("listing events: %w", err)
		}
	}

	r, report := buildReflection(tasks, events, now)
	return SelfReflectOutput{Result: Result{Summary: report}, Reflection: r}, nil
}

// buildReflection builds the report from already fetched data.
func buildReflection(tasks []gtasks.Task, events []gcalendar.Event, now time.Time) (Reflection, string) {
	today := startOfDay(now)
	r := Reflection{TaskStatistics: computeStatistics(tasks, now), EventsToday: len(events)}

	var pending, overdue, high, completed []gtasks.Task
	for _, task := range tasks {
		if task.IsCompleted() {
			completed = append(completed, task)
			continue
		}
		pending = append(pending, task)
		if isOverdue(task, today) {
			overdue = append(overdue, task)
		}
		if strings.Contains(task.Title, "🔴") || strings.Contains(task.Title, "🟠") {
			high = append(high, task)
		}
		lower := strings.ToLower(task.Title)
		if strings.Contains(task.Title, "🚧") || strings.Contains(lower, "in progress") {
			r.InProgress++
		}
		if strings.Contains(task.Title, "🚫") || strings.Contains(lower, "blocked") {
			r.Blocked++
		}
	}
	r.HighPriority = len(high)
	for _, e := range events {
		r.ScheduledHours += e.Duration().Hours()
	}

	var b strings.Builder
	b.WriteString("🤔 Self-Reflection Report\n")
	b.WriteString(reportRule + "\n\n")

	b.WriteString("📊 Current State:\n")
	fmt.Fprintf(&b, "  • Total Tasks: %d\n", r.Total)
	fmt.Fprintf(&b, "  • Completed: %d (%.1f%%)\n", r.Completed, r.CompletionRate)
	fmt.Fprintf(&b, "  • Pending: %d\n", r.Pending)
	fmt.Fprintf(&b, "  • Overdue: %d\n", r.Overdue)
	fmt.Fprintf(&b, "  • Calendar Events Today: %d\n\n", r.EventsToday)

	b.WriteString("✅ Step Completion Check:\n")
	if len(pending) > 0 {
		if r.InProgress > 0 {
			fmt.Fprintf(&b, "  ⚠️ %d task(s) in progress\n", r.InProgress)
		}
		if r.Blocked > 0 {
			fmt.Fprintf(&b, "  🚫 %d task(s) blocked\n", r.Blocked)
		}
		fmt.Fprintf(&b, "  ⏳ %d task(s) not started\n", max(len(pending)-r.InProgress-r.Blocked, 0))
	} else {
		b.WriteString("  ✅ All tasks completed!\n")
	}
	b.WriteString("\n")

	b.WriteString("🚧 Blocker Analysis:\n")
	if len(overdue) > 0 {
		fmt.Fprintf(&b, "  ⚠️ %d overdue task(s) need immediate attention:\n", len(overdue))
		for _, task := range overdue[:min(len(overdue), reflectionTopN)] {
			days := int(today.Sub(dueDay(*task.Due, today.Location())).Hours() / 24)
			fmt.Fprintf(&b, "     - %s (overdue by %d days)\n", stripPriority(task.Title), days)
		}
		b.WriteString("\n  💡 Recommendation: Prioritize overdue tasks or reschedule them\n")
	} else {
		b.WriteString("  ✅ No overdue tasks\n")
	}
	b.WriteString("\n")

	b.WriteString("🎯 Priority Assessment:\n")
	if len(high) > 0 {
		fmt.Fprintf(&b, "  ⚡ %d high-priority task(s):\n", len(high))
		for _, task := range high[:min(len(high), reflectionTopN)] {
			fmt.Fprintf(&b, "     - %s\n", stripPriority(task.Title))
		}
		b.WriteString("\n  💡 Recommendation: Focus on high-priority items first\n")
	} else {
		b.WriteString("  ✅ No urgent high-priority tasks\n")
	}
	b.WriteString("\n")

	b.WriteString("⏱️ Time Management:\n")
	fmt.Fprintf(&b, "  • Scheduled today: %.1f hours\n", r.ScheduledHours)
	fmt.Fprintf(&b, "  • Events today: %d\n", r.EventsToday)
	switch {
	case r.ScheduledHours > heavyScheduleHours:
		b.WriteString("  ⚠️ Heavy schedule today\n")
		b.WriteString("  💡 Recommendation: Ensure adequate breaks\n")
	case r.ScheduledHours < focusScheduleHours && len(pending) > 0:
		b.WriteString("  💡 Recommendation: Schedule focus time for pending tasks\n")
	}
	b.WriteString("\n")

	b.WriteString("📈 Productivity Insights:\n")
	rate := r.CompletionRate
	switch {
	case rate >= 70:
		fmt.Fprintf(&b, "  🎉 Great work! %.0f%% completion rate\n", rate)
	case rate >= 50:
		fmt.Fprintf(&b, "  👍 Good progress at %.0f%% completion\n", rate)
	case rate >= 30:
		fmt.Fprintf(&b, "  ⚠️ Moderate completion at %.0f%%\n", rate)
	default:
		fmt.Fprintf(&b, "  ⚠️ Low completion rate at %.0f%%\n", rate)
	}
	recent := 0
	for _, task := range completed {
		if task.Completed != nil {
			recent++
		}
	}
	if recent > 0 {
		fmt.Fprintf(&b, "  ✅ Recently completed: %d task(s)\n", min(recent, recentCompletionsTop))
	}
	b.WriteString("\n")

	if rate < 50 {
		r.Recommendations = append(r.Recommendations, "Low completion rate - focus on finishing tasks before starting new ones")
	}
	if len(overdue) > 0 {
		r.Recommendations = append(r.Recommendations, fmt.Sprintf("Address %d overdue task(s) immediately", len(overdue)))
	}
	if len(high) > 0 && r.ScheduledHours < focusScheduleHours {
		r.Recommendations = append(r.Recommendations, "Schedule dedicated time for high-priority tasks")
	}
	if len(pending) > tooManyPendingTasks {
		r.Recommendations = append(r.Recommendations, "Too many pending tasks - consider breaking them down or archiving old ones")
	}
	if r.ScheduledHours < lightScheduleHours && len(pending) > 0 {
		r.Recommendations = append(r.Recommendations, "Light calendar today - good opportunity for deep work")
	}
	if len(r.Recommendations) == 0 {
		r.Recommendations = append(r.Recommendations, "Keep up the great work! Stay consistent")
	}
	b.WriteString("💡 Key Recommendations:\n")
	for i, rec := range r.Recommendations {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, rec)
	}
	b.WriteString("\n")

	b.WriteString("🚀 What's Next:\n")
	if len(pending) == 0 {
		b.WriteString("  ✨ All tasks complete! Time to plan your next goals.\n")
		return r, b.String()
	}
	next := nextTask(pending)
	r.NextTask = next.Title
	fmt.Fprintf(&b, "  → Suggested next task: %s\n", next.Title)
	if next.Due != nil {
		days := int(dueDay(*next.Due, today.Location()).Sub(today).Hours() / 24)
		switch {
		case days == 0:
			b.WriteString("     ⏰ Due TODAY!\n")
		case days > 0:
			fmt.Fprintf(&b, "     📅 Due in %d days\n", days)
		}
	}
	return r, b.String()
}

// nextTask picks the first pending task of the highest priority present.
func nextTask(pending []gtasks.Task) gtasks.Task {
	for _, emoji := range []string{"🔴", "🟠", "🟡", "🟢"} {
		for _, task := range pending {
			if strings.Contains(task.Title, emoji) {
				return task
			}
		}
	}
	return pending[0]
}

type WeeklyTrendsOutput struct {
	Result
	Completed     int     `json:"completed"`
	AveragePerDay float64 `json:"average_per_day"`
}

type AnalyzeWeeklyTrendsTool struct {
	tasks TasksClient
	opts  TaskOptions
	l     pkgLog.Logger
}

func NewAnalyzeWeeklyTrendsTool(tasks TasksClient, opts TaskOptions, l pkgLog.Logger) *AnalyzeWeeklyTrendsTool {
	return &AnalyzeWeeklyTrendsTool{tasks: tasks, opts: opts, l: l}
}

func (t *AnalyzeWeeklyTrendsTool) Name() string {
	return "analyze_weekly_trends"
}

func (t *AnalyzeWeeklyTrendsTool) Description() string {
	return "Analyze task completions over the past 7 days."
}

func (t *AnalyzeWeeklyTrendsTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{})
}

func (t *AnalyzeWeeklyTrendsTool) Execute(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	if t.tasks == nil {
		return nil, ErrTasksUnavailable
	}

	tasks, err := t.tasks.ListTasks(ctx, gtasks.ListTasksRequest{ShowCompleted: true, MaxResults: maxListedTasks})
	if err != nil {
		t.l.Errorf(ctx, "analyze_weekly_trends: failed to list tasks: %v", err)
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	now := t.opts.Clock.now()
	since := now.AddDate(0, 0, -trendWindowDays)

	var done []gtasks.Task
	for _, task := range tasks {
		if task.IsCompleted() && task.Completed != nil && task.Completed.After(since) {
			done = append(done, task)
		}
	}
	sort.SliceStable(done, func(i, j int) bool {
		return done[i].Completed.After(*done[j].Completed)
	})

	out := WeeklyTrendsOutput{Completed: len(done), AveragePerDay: float64(len(done)) / trendWindowDays}

	var b strings.Builder
	b.WriteString("📊 Weekly Productivity Trends\n")
	b.WriteString(reportRule + "\n\n")
	b.WriteString("📅 Past 7 Days:\n")
	fmt.Fprintf(&b, "  • Tasks Completed: %d\n", out.Completed)
	fmt.Fprintf(&b, "  • Average per Day: %.1f\n\n", out.AveragePerDay)
	if len(done) > 0 {
		b.WriteString("✅ Recent Completions:\n")
		for _, task := range done[:min(len(done), recentCompletionsTop)] {
			fmt.Fprintf(&b, "  • %s\n", task.Title)
			fmt.Fprintf(&b, "    Completed: %s\n", task.Completed.In(now.Location()).Format("Jan 02 at 03:04 PM"))
		}
	}
	b.WriteString("\n💡 Keep tracking your progress to identify patterns!")
	out.Summary = b.String()

	return out, nil
}

var (
	_ agent.Tool = (*SelfReflectTool)(nil)
	_ agent.Tool = (*AnalyzeWeeklyTrendsTool)(nil)
)
