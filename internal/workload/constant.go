package workload

// StandardDayHours is the denominator of the utilization percentage.
const StandardDayHours = 8.0

// Tier thresholds, exclusive upper bounds.
const (
	LowTierMaxHours    = 4.0
	MediumTierMaxHours = 8.0
	HighTierMaxHours   = 12.0
)

// Priorities used by tasks and issues.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// productivitySteps grade the number of open items. The first step whose
// maxItems is not exceeded gives the score.
var productivitySteps = []struct{ maxItems, score int }{
	{0, 100},
	{5, 85},
	{10, 70},
	{15, 55},
}

// MinProductivityScore is the score past the last step.
const MinProductivityScore = 40

// IssueHours is the effort assumed per open issue, by priority.
var IssueHours = map[string]float64{
	PriorityCritical: 4,
	PriorityHigh:     3,
	PriorityMedium:   2,
	PriorityLow:      1,
}

// PullRequestHours is the flat effort assumed per open pull request.
const PullRequestHours = 0.5

// Label names mapped to an issue priority. Labels are compared lowercased.
var (
	CriticalLabels = []string{"critical", "urgent", "p0"}
	HighLabels     = []string{"high", "important", "p1"}
	LowLabels      = []string{"low", "p3"}
)

var tierDescriptions = map[Tier]string{
	TierLow:        "Light workload - good opportunity for deep work or learning",
	TierMedium:     "Balanced workload - maintain steady pace",
	TierHigh:       "Heavy workload - prioritize and take breaks",
	TierOverloaded: "Overloaded schedule - consider rescheduling or delegating",
}

var tierRecommendations = map[Tier][]string{
	TierLow: {
		"Good time to tackle complex tasks",
		"Consider scheduling focus time",
		"Review backlog for new tasks",
	},
	TierMedium: {
		"Maintain current pace",
		"Schedule regular breaks",
		"Monitor task completion",
	},
	TierHigh: {
		"Prioritize high-impact tasks",
		"Defer low-priority items",
		"Block focus time, minimize meetings",
		"Take breaks every 90 minutes",
	},
	TierOverloaded: {
		"⚠️ Reschedule non-urgent tasks",
		"⚠️ Consider delegating work",
		"⚠️ Communicate workload to team",
		"⚠️ Focus only on critical items",
	},
}

var tierEmoji = map[Tier]string{
	TierLow:        "🟢",
	TierMedium:     "🟡",
	TierHigh:       "🟠",
	TierOverloaded: "🔴",
}

const unknownTierEmoji = "⚪"

const summaryTemplate = "Today you have %d calendar events, %d pending tasks, %d assigned GitHub issues, and %d open pull requests."
