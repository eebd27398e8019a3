package workload

import (
	"fmt"
	"strings"
)

// TierFor classifies total hours. Every threshold is an exclusive upper bound.
func TierFor(totalHours float64) Tier {
	switch {
	case totalHours < LowTierMaxHours:
		return TierLow
	case totalHours < MediumTierMaxHours:
		return TierMedium
	case totalHours < HighTierMaxHours:
		return TierHigh
	default:
		return TierOverloaded
	}
}

// IssuePriority maps issue labels to a priority. The strongest label wins;
// an issue without a known label is medium.
func IssuePriority(labels []string) string {
	has := func(set []string) bool {
		for _, l := range labels {
			for _, s := range set {
				if strings.EqualFold(strings.TrimSpace(l), s) {
					return true
				}
			}
		}
		return false
	}
	switch {
	case has(CriticalLabels):
		return PriorityCritical
	case has(HighLabels):
		return PriorityHigh
	case has(LowLabels):
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// IssueTrackerHours is the priority-weighted issue sum plus the flat pull request share.
func IssueTrackerHours(load IssueLoad) float64 {
	var hours float64
	for _, is := range load.Issues {
		h, ok := IssueHours[is.Priority]
		if !ok {
			h = IssueHours[PriorityMedium]
		}
		hours += h
	}
	return hours + float64(load.PullRequests)*PullRequestHours
}

// Aggregate computes the Snapshot of c. Failed sources hold zero values and
// therefore contribute nothing.
func Aggregate(c Collection) Snapshot {
	var s Snapshot

	for _, e := range c.Events {
		s.ScheduledHours += e.Hours()
	}
	s.EventCount = len(c.Events)

	for _, t := range c.Tasks {
		if t.HasEstimate && t.EstimatedHours > 0 {
			s.PendingTaskHours += t.EstimatedHours
		}
	}
	s.TaskCount = len(c.Tasks)

	s.IssueTrackerHours = IssueTrackerHours(c.IssueLoad)
	s.IssueCount = len(c.IssueLoad.Issues)
	s.PullRequestCount = c.IssueLoad.PullRequests

	s.TotalHours = s.ScheduledHours + s.PendingTaskHours + s.IssueTrackerHours
	s.UtilizationPercent = s.TotalHours / StandardDayHours * 100
	s.Tier = TierFor(s.TotalHours)
	return s
}

// Analyze aggregates c and attaches the tier description, recommendations,
// breakdown and the rendered report.
func Analyze(c Collection) Analysis {
	s := Aggregate(c)
	recs := make([]string, len(tierRecommendations[s.Tier]))
	copy(recs, tierRecommendations[s.Tier])

	a := Analysis{
		Snapshot:        s,
		Description:     tierDescriptions[s.Tier],
		Utilization:     fmt.Sprintf("%.1f%%", s.UtilizationPercent),
		Recommendations: recs,
		Breakdown: Breakdown{
			ScheduledEvents: fmt.Sprintf("%d events (%.1fh)", s.EventCount, s.ScheduledHours),
			PendingTasks:    fmt.Sprintf("%d tasks (%.1fh)", s.TaskCount, s.PendingTaskHours),
			GitHubWork:      fmt.Sprintf("%d issues + %d PRs (%.1fh)", s.IssueCount, s.PullRequestCount, s.IssueTrackerHours),
			TotalWorkload:   fmt.Sprintf("%.1fh", s.TotalHours),
		},
		SourceErrors: c.ErrorTexts(),
	}
	a.Report = Report(a)
	return a
}

// Report renders a as the markdown block appended to chat answers.
func Report(a Analysis) string {
	emoji, ok := tierEmoji[a.Snapshot.Tier]
	if !ok {
		emoji = unknownTierEmoji
	}

	var b strings.Builder
	b.WriteString("\n## 📊 Workload Analysis\n\n")
	fmt.Fprintf(&b, "%s **Effort Level**: %s\n\n", emoji, strings.ToUpper(string(a.Snapshot.Tier)))
	fmt.Fprintf(&b, "**Summary**: %s\n\n", a.Description)
	fmt.Fprintf(&b, "**Utilization**: %s\n\n", a.Utilization)

	b.WriteString("### Breakdown\n\n")
	fmt.Fprintf(&b, "- **Scheduled Events**: %s\n", a.Breakdown.ScheduledEvents)
	fmt.Fprintf(&b, "- **Pending Tasks**: %s\n", a.Breakdown.PendingTasks)
	fmt.Fprintf(&b, "- **Github Work**: %s\n", a.Breakdown.GitHubWork)
	fmt.Fprintf(&b, "- **Total Workload**: %s\n", a.Breakdown.TotalWorkload)

	if len(a.Recommendations) > 0 {
		b.WriteString("\n### Recommendations\n\n")
		for _, rec := range a.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}
	return b.String()
}

// Summarize counts today's items of c. A failed source counts zero.
func Summarize(c Collection) DailySummary {
	d := DailySummary{
		CalendarEvents:   len(c.Events),
		PendingTasks:     len(c.Tasks),
		AssignedIssues:   len(c.IssueLoad.Issues),
		OpenPullRequests: c.IssueLoad.PullRequests,
		SourceErrors:     c.ErrorTexts(),
	}
	if !c.Day.IsZero() {
		d.Date = c.Day.Format("2006-01-02")
	}
	d.Summary = fmt.Sprintf(summaryTemplate, d.CalendarEvents, d.PendingTasks, d.AssignedIssues, d.OpenPullRequests)
	return d
}

// ProductivityScore grades the open items of d, pending tasks plus GitHub
// issues and pull requests, as a percentage. Fewer open items score higher.
func ProductivityScore(d DailySummary) int {
	items := d.PendingTasks + d.AssignedIssues + d.OpenPullRequests
	for _, step := range productivitySteps {
		if items <= step.maxItems {
			return step.score
		}
	}
	return MinProductivityScore
}
