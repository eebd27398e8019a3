package workload

import "time"

// Tier is a coarse classification of total estimated hours.
type Tier string

const (
	TierLow        Tier = "low"
	TierMedium     Tier = "medium"
	TierHigh       Tier = "high"
	TierOverloaded Tier = "overloaded"
)

// Source names one of the independent inputs of a Collection.
type Source string

const (
	SourceTasks    Source = "tasks"
	SourceCalendar Source = "calendar"
	SourceGitHub   Source = "github"
)

// Sources lists every source in report order.
var Sources = []Source{SourceCalendar, SourceTasks, SourceGitHub}

// --- Source values ---

// PendingTask is an open task with its parsed metadata.
type PendingTask struct {
	Title          string     `json:"title"`
	Priority       string     `json:"priority"`
	EstimatedHours float64    `json:"estimated_hours"`
	HasEstimate    bool       `json:"has_estimate"`
	Due            *time.Time `json:"due,omitempty"`
}

// ScheduledEvent is a timed calendar entry. All-day events are not scheduled work.
type ScheduledEvent struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Hours returns the event length in hours, never negative.
func (e ScheduledEvent) Hours() float64 {
	if !e.End.After(e.Start) {
		return 0
	}
	return e.End.Sub(e.Start).Hours()
}

// Issue is an open issue assigned to the user.
type Issue struct {
	Number   int    `json:"number"`
	Repo     string `json:"repo"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Priority string `json:"priority"`
}

// IssueLoad is the open issue-tracker work of the user.
type IssueLoad struct {
	Issues       []Issue `json:"issues"`
	PullRequests int     `json:"pull_requests"`
}

// Collection is one fetch of every source. A failed source keeps its zero
// value and has its error in Errors.
type Collection struct {
	Day       time.Time
	Tasks     []PendingTask
	Events    []ScheduledEvent
	IssueLoad IssueLoad
	Errors    map[Source]error
}

// Failed reports whether s could not be read.
func (c Collection) Failed(s Source) bool {
	return c.Errors[s] != nil
}

// ErrorTexts returns the source errors as strings keyed by source name.
func (c Collection) ErrorTexts() map[string]string {
	if len(c.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.Errors))
	for s, err := range c.Errors {
		out[string(s)] = err.Error()
	}
	return out
}

// --- Derived values ---

// Snapshot is the aggregated workload. TotalHours is always the exact sum
// of the three per-source hours.
type Snapshot struct {
	ScheduledHours     float64 `json:"scheduled_hours"`
	PendingTaskHours   float64 `json:"pending_task_hours"`
	IssueTrackerHours  float64 `json:"issue_tracker_hours"`
	EventCount         int     `json:"event_count"`
	TaskCount          int     `json:"task_count"`
	IssueCount         int     `json:"issue_count"`
	PullRequestCount   int     `json:"pull_request_count"`
	TotalHours         float64 `json:"total_hours"`
	UtilizationPercent float64 `json:"utilization_percent"`
	Tier               Tier    `json:"tier"`
}

// Breakdown is the per-source text shown in the report.
type Breakdown struct {
	ScheduledEvents string `json:"scheduled_events"`
	PendingTasks    string `json:"pending_tasks"`
	GitHubWork      string `json:"github_work"`
	TotalWorkload   string `json:"total_workload"`
}

// Analysis is a Snapshot with its human-facing interpretation.
type Analysis struct {
	Snapshot        Snapshot          `json:"snapshot"`
	Description     string            `json:"description"`
	Utilization     string            `json:"utilization"`
	Breakdown       Breakdown         `json:"breakdown"`
	Recommendations []string          `json:"recommendations"`
	Report          string            `json:"report"`
	SourceErrors    map[string]string `json:"source_errors,omitempty"`
}

// DailySummary counts today's items per source.
type DailySummary struct {
	Date             string            `json:"date"`
	CalendarEvents   int               `json:"calendar_events"`
	PendingTasks     int               `json:"pending_tasks"`
	AssignedIssues   int               `json:"assigned_issues"`
	OpenPullRequests int               `json:"open_pull_requests"`
	Summary          string            `json:"summary"`
	SourceErrors     map[string]string `json:"source_errors,omitempty"`
}

// Dashboard combines the daily summary, the analysis and the open issues.
// ProductivityScore is ProductivityScore(Summary).
type Dashboard struct {
	Summary           DailySummary `json:"summary"`
	Analysis          Analysis     `json:"analysis"`
	Issues            []Issue      `json:"issues"`
	ProductivityScore int          `json:"productivity_score"`
}
