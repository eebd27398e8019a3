package tools_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"devflow/internal/agent/tools"
	"devflow/pkg/gcalendar"
	"devflow/pkg/gtasks"
)

func TestSelfReflectTool(t *testing.T) {
	tasks := sampleTasks()
	tasks = append(tasks, gtasks.Task{ID: "6", Title: "🚧 Migrate CI (in progress)", Status: gtasks.StatusNeedsAction})
	calendar := &mockCalendarClient{events: []gcalendar.Event{
		{Summary: "Standup", StartTime: at(9, 30), EndTime: at(10, 0)},
	}}
	tool := tools.NewSelfReflectTool(&mockTasksClient{tasks: tasks}, calendar, calendarOpts(t), &mockLogger{})

	res, err := tool.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	out := res.(tools.SelfReflectOutput)

	if out.Total != 6 || out.Overdue != 1 || out.InProgress != 1 || out.HighPriority != 3 {
		t.Errorf("reflection = %+v", out.Reflection)
	}
	if out.ScheduledHours != 0.5 {
		t.Errorf("scheduled hours = %v", out.ScheduledHours)
	}
	if out.NextTask != "🔴 Fix login bug" {
		t.Errorf("next task = %q", out.NextTask)
	}

	for _, want := range []string{
		"🤔 Self-Reflection Report",
		"📊 Current State:",
		"  • Calendar Events Today: 1",
		"  ⚠️ 1 task(s) in progress",
		"     - Fix login bug (overdue by 3 days)",
		"  ⚡ 3 high-priority task(s):",
		"  • Scheduled today: 0.5 hours",
		"  ⚠️ Low completion rate at 17%",
		"Address 1 overdue task(s) immediately",
		"Light calendar today - good opportunity for deep work",
		"  → Suggested next task: 🔴 Fix login bug",
	} {
		if !strings.Contains(out.Summary, want) {
			t.Errorf("report missing %q:\n%s", want, out.Summary)
		}
	}
}

func TestSelfReflectTool_AllDone(t *testing.T) {
	done := time.Date(2024, 4, 30, 12, 0, 0, 0, time.UTC)
	tasks := []gtasks.Task{{ID: "1", Title: "🟢 Ship it", Status: gtasks.StatusCompleted, Completed: &done}}
	tool := tools.NewSelfReflectTool(&mockTasksClient{tasks: tasks}, nil, calendarOpts(t), &mockLogger{})

	res, err := tool.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	summary := summaryOf(t, res)
	for _, want := range []string{
		"  ✅ All tasks completed!",
		"  🎉 Great work! 100% completion rate",
		"  1. Keep up the great work! Stay consistent",
		"  ✨ All tasks complete! Time to plan your next goals.",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("report missing %q:\n%s", want, summary)
		}
	}
}

func TestAnalyzeWeeklyTrendsTool(t *testing.T) {
	recent := time.Date(2024, 4, 29, 15, 30, 0, 0, time.UTC)
	old := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	tasks := []gtasks.Task{
		{Title: "🟢 Recent", Status: gtasks.StatusCompleted, Completed: &recent},
		{Title: "🟢 Old", Status: gtasks.StatusCompleted, Completed: &old},
		{Title: "🟡 Open", Status: gtasks.StatusNeedsAction},
	}
	tool := tools.NewAnalyzeWeeklyTrendsTool(&mockTasksClient{tasks: tasks}, taskOpts(t), &mockLogger{})

	res, err := tool.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	out := res.(tools.WeeklyTrendsOutput)
	if out.Completed != 1 {
		t.Errorf("completed = %d, want 1", out.Completed)
	}
	for _, want := range []string{"  • Tasks Completed: 1", "  • Average per Day: 0.1", "  • 🟢 Recent\n    Completed: Apr 29 at 03:30 PM"} {
		if !strings.Contains(out.Summary, want) {
			t.Errorf("summary missing %q:\n%s", want, out.Summary)
		}
	}
}
