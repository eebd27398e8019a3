package workload_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"devflow/internal/workload"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		hours float64
		want  workload.Tier
	}{
		{0, workload.TierLow},
		{3.99, workload.TierLow},
		{4.0, workload.TierMedium},
		{7.99, workload.TierMedium},
		{8.0, workload.TierHigh},
		{11.99, workload.TierHigh},
		{12.0, workload.TierOverloaded},
		{40, workload.TierOverloaded},
	}
	for _, tt := range tests {
		if got := workload.TierFor(tt.hours); got != tt.want {
			t.Errorf("TierFor(%v) = %s, want %s", tt.hours, got, tt.want)
		}
	}
}

func TestIssuePriority(t *testing.T) {
	tests := []struct {
		labels []string
		want   string
	}{
		{[]string{"bug", "P0"}, workload.PriorityCritical},
		{[]string{"Urgent"}, workload.PriorityCritical},
		{[]string{"important"}, workload.PriorityHigh},
		{[]string{"p1", "low"}, workload.PriorityHigh},
		{[]string{"p3"}, workload.PriorityLow},
		{[]string{"enhancement"}, workload.PriorityMedium},
		{nil, workload.PriorityMedium},
	}
	for _, tt := range tests {
		if got := workload.IssuePriority(tt.labels); got != tt.want {
			t.Errorf("IssuePriority(%v) = %s, want %s", tt.labels, got, tt.want)
		}
	}
}

func hourEvent(start, hours int) workload.ScheduledEvent {
	s := time.Date(2024, 5, 1, start, 0, 0, 0, time.UTC)
	return workload.ScheduledEvent{Title: "event", Start: s, End: s.Add(time.Duration(hours) * time.Hour)}
}

func sampleCollection() workload.Collection {
	return workload.Collection{
		Day:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Events: []workload.ScheduledEvent{hourEvent(9, 1), hourEvent(13, 2)},
		Tasks: []workload.PendingTask{
			{Title: "a", Priority: "high", EstimatedHours: 2.5, HasEstimate: true},
			{Title: "b", Priority: "medium"},
		},
		IssueLoad: workload.IssueLoad{
			Issues: []workload.Issue{
				{Number: 1, Priority: workload.PriorityCritical},
				{Number: 2, Priority: workload.PriorityLow},
			},
			PullRequests: 3,
		},
	}
}

func TestAggregate(t *testing.T) {
	s := workload.Aggregate(sampleCollection())

	if s.ScheduledHours != 3 || s.EventCount != 2 {
		t.Errorf("calendar = %vh / %d", s.ScheduledHours, s.EventCount)
	}
	if s.PendingTaskHours != 2.5 || s.TaskCount != 2 {
		t.Errorf("tasks = %vh / %d", s.PendingTaskHours, s.TaskCount)
	}
	if s.IssueTrackerHours != 6.5 || s.IssueCount != 2 || s.PullRequestCount != 3 {
		t.Errorf("github = %vh / %d issues / %d prs", s.IssueTrackerHours, s.IssueCount, s.PullRequestCount)
	}
	if s.TotalHours != s.ScheduledHours+s.PendingTaskHours+s.IssueTrackerHours {
		t.Errorf("total %v is not the sum of its parts", s.TotalHours)
	}
	if s.TotalHours != 12 || s.Tier != workload.TierOverloaded {
		t.Errorf("total = %v tier = %s", s.TotalHours, s.Tier)
	}
	if s.UtilizationPercent != 150 {
		t.Errorf("utilization = %v, want 150", s.UtilizationPercent)
	}
}

func TestAggregate_FailedSourceContributesZero(t *testing.T) {
	c := sampleCollection()
	full := workload.Aggregate(c)

	c.Events = nil
	c.Errors = map[workload.Source]error{workload.SourceCalendar: workload.ErrSourceUnavailable}
	s := workload.Aggregate(c)

	if s.ScheduledHours != 0 || s.EventCount != 0 {
		t.Errorf("failed calendar contributed %vh", s.ScheduledHours)
	}
	if s.PendingTaskHours != full.PendingTaskHours || s.IssueTrackerHours != full.IssueTrackerHours {
		t.Error("other sources must be unaffected")
	}
	if s.TotalHours != s.PendingTaskHours+s.IssueTrackerHours {
		t.Errorf("total = %v", s.TotalHours)
	}
}

func TestAnalyze_Report(t *testing.T) {
	a := workload.Analyze(workload.Collection{
		Events: []workload.ScheduledEvent{hourEvent(10, 2)},
		Tasks:  []workload.PendingTask{{Title: "x", EstimatedHours: 3, HasEstimate: true}},
	})

	if a.Snapshot.Tier != workload.TierMedium {
		t.Fatalf("tier = %s", a.Snapshot.Tier)
	}
	want := "\n## 📊 Workload Analysis\n\n" +
		"🟡 **Effort Level**: MEDIUM\n\n" +
		"**Summary**: Balanced workload - maintain steady pace\n\n" +
		"**Utilization**: 62.5%\n\n" +
		"### Breakdown\n\n" +
		"- **Scheduled Events**: 1 events (2.0h)\n" +
		"- **Pending Tasks**: 1 tasks (3.0h)\n" +
		"- **Github Work**: 0 issues + 0 PRs (0.0h)\n" +
		"- **Total Workload**: 5.0h\n" +
		"\n### Recommendations\n\n" +
		"- Maintain current pace\n" +
		"- Schedule regular breaks\n" +
		"- Monitor task completion\n"
	if a.Report != want {
		t.Errorf("report =\n%q\nwant\n%q", a.Report, want)
	}
}

func TestReport_UnknownTier(t *testing.T) {
	got := workload.Report(workload.Analysis{Snapshot: workload.Snapshot{Tier: "unknown"}})
	if !strings.Contains(got, "⚪ **Effort Level**: UNKNOWN") {
		t.Errorf("report = %q", got)
	}
}

func TestSummarize(t *testing.T) {
	c := sampleCollection()
	c.Errors = map[workload.Source]error{workload.SourceGitHub: errors.New("github: token not configured")}
	c.IssueLoad = workload.IssueLoad{}

	d := workload.Summarize(c)
	want := "Today you have 2 calendar events, 2 pending tasks, 0 assigned GitHub issues, and 0 open pull requests."
	if d.Summary != want {
		t.Errorf("summary = %q", d.Summary)
	}
	if d.Date != "2024-05-01" {
		t.Errorf("date = %q", d.Date)
	}
	if d.SourceErrors["github"] == "" {
		t.Error("source error must be reported")
	}
}

func TestProductivityScore(t *testing.T) {
	tests := []struct {
		name string
		sum  workload.DailySummary
		want int
	}{
		{"nothing open", workload.DailySummary{}, 100},
		{"events do not count", workload.DailySummary{CalendarEvents: 9}, 100},
		{"one task", workload.DailySummary{PendingTasks: 1}, 85},
		{"five items", workload.DailySummary{PendingTasks: 2, AssignedIssues: 2, OpenPullRequests: 1}, 85},
		{"six items", workload.DailySummary{PendingTasks: 6}, 70},
		{"ten items", workload.DailySummary{AssignedIssues: 10}, 70},
		{"fifteen items", workload.DailySummary{PendingTasks: 5, AssignedIssues: 5, OpenPullRequests: 5}, 55},
		{"sixteen items", workload.DailySummary{OpenPullRequests: 16}, workload.MinProductivityScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := workload.ProductivityScore(tt.sum); got != tt.want {
				t.Errorf("ProductivityScore() = %d, want %d", got, tt.want)
			}
		})
	}
}
