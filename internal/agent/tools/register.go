package tools

import (
	"fmt"

	"devflow/internal/agent"
	"devflow/pkg/datemath"
	pkgLog "devflow/pkg/log"
)

// Deps carries the clients every catalog entry is built from. A nil client
// keeps its tools in the catalog; calling them reports the service as not configured.
type Deps struct {
	Calendar CalendarClient
	Tasks    TasksClient
	GitHub   GitHubClient

	CalendarID     string
	Clock          Clock
	Parser         *datemath.Parser
	WorkHoursStart int
	WorkHoursEnd   int

	Logger pkgLog.Logger
}

// Catalog builds every tool of the action catalog, grouped by service.
func Catalog(d Deps) []agent.Tool {
	calOpts := CalendarOptions{
		CalendarID:     d.CalendarID,
		Clock:          d.Clock,
		Parser:         d.Parser,
		WorkHoursStart: d.WorkHoursStart,
		WorkHoursEnd:   d.WorkHoursEnd,
	}
	taskOpts := TaskOptions{Clock: d.Clock, Parser: d.Parser}
	l := d.Logger

	return []agent.Tool{
		NewCreateCalendarEventTool(d.Calendar, calOpts, l),
		NewGetCalendarEventsTool(d.Calendar, calOpts, l),
		NewFindFreeTimeSlotsTool(d.Calendar, calOpts, l),
		NewDeleteCalendarEventTool(d.Calendar, calOpts, l),

		NewCreateTaskTool(d.Tasks, taskOpts, l),
		NewListTasksTool(d.Tasks, l),
		NewUpdateTaskStatusTool(d.Tasks, l),
		NewDeleteTaskTool(d.Tasks, l),
		NewGetTaskStatisticsTool(d.Tasks, taskOpts, l),
		NewPrioritizeTasksTool(d.Tasks, taskOpts, l),

		NewGetMyAssignedIssuesTool(d.GitHub, l),
		NewGetMyPullRequestsTool(d.GitHub, l),
		NewListRepoIssuesTool(d.GitHub, l),
		NewListPullRequestsTool(d.GitHub, l),

		NewSelfReflectTool(d.Tasks, d.Calendar, calOpts, l),
		NewAnalyzeWeeklyTrendsTool(d.Tasks, taskOpts, l),
	}
}

// NewCatalog registers the full catalog and checks that every validation
// rule in rules targets a registered tool.
func NewCatalog(d Deps, rules agent.RuleSet) (*agent.Catalog, error) {
	c := agent.NewCatalog()
	for _, t := range Catalog(d) {
		if err := c.Add(t); err != nil {
			return nil, fmt.Errorf("registering %s: %w", t.Name(), err)
		}
	}
	if rules != nil {
		if err := c.CheckCoverage(rules); err != nil {
			return nil, err
		}
	}
	return c, nil
}
