package http

import "devflow/internal/workload"

// --- Response DTOs ---

type workloadResp struct {
	EffortLevel     string             `json:"effort_level"`
	Snapshot        workload.Snapshot  `json:"snapshot"`
	Description     string             `json:"description"`
	Utilization     string             `json:"utilization"`
	Breakdown       workload.Breakdown `json:"breakdown"`
	Recommendations []string           `json:"recommendations"`
	Report          string             `json:"report"`
	SourceErrors    map[string]string  `json:"source_errors,omitempty"`
}

func newWorkloadResp(a workload.Analysis) workloadResp {
	return workloadResp{
		EffortLevel:     string(a.Snapshot.Tier),
		Snapshot:        a.Snapshot,
		Description:     a.Description,
		Utilization:     a.Utilization,
		Breakdown:       a.Breakdown,
		Recommendations: a.Recommendations,
		Report:          a.Report,
		SourceErrors:    a.SourceErrors,
	}
}

type summaryResp struct {
	Date         string            `json:"date"`
	EventsToday  int               `json:"events_today"`
	TasksPending int               `json:"tasks_pending"`
	GitHubIssues int               `json:"github_issues"`
	GitHubPRs    int               `json:"github_prs"`
	Summary      string            `json:"summary"`
	SourceErrors map[string]string `json:"source_errors,omitempty"`
}

func newSummaryResp(d workload.DailySummary) summaryResp {
	return summaryResp{
		Date:         d.Date,
		EventsToday:  d.CalendarEvents,
		TasksPending: d.PendingTasks,
		GitHubIssues: d.AssignedIssues,
		GitHubPRs:    d.OpenPullRequests,
		Summary:      d.Summary,
		SourceErrors: d.SourceErrors,
	}
}

type dashboardResp struct {
	Summary           summaryResp      `json:"summary"`
	Workload          workloadResp     `json:"workload"`
	Issues            []workload.Issue `json:"issues"`
	ProductivityScore int              `json:"productivity_score"`
}

func newDashboardResp(d workload.Dashboard) dashboardResp {
	return dashboardResp{
		Summary:           newSummaryResp(d.Summary),
		Workload:          newWorkloadResp(d.Analysis),
		Issues:            d.Issues,
		ProductivityScore: d.ProductivityScore,
	}
}
