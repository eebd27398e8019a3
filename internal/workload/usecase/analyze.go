package usecase

import (
	"context"

	"devflow/internal/workload"
)

// Summarize counts today's items per source.
func (uc *implUseCase) Summarize(c workload.Collection) workload.DailySummary {
	return workload.Summarize(c)
}

// Analyze computes the workload snapshot and its report.
func (uc *implUseCase) Analyze(c workload.Collection) workload.Analysis {
	return workload.Analyze(c)
}

// Dashboard collects once and returns every derived view of that collection.
func (uc *implUseCase) Dashboard(ctx context.Context) workload.Dashboard {
	c := uc.Collect(ctx)
	issues := c.IssueLoad.Issues
	if issues == nil {
		issues = []workload.Issue{}
	}
	summary := uc.Summarize(c)
	return workload.Dashboard{
		Summary:           summary,
		Analysis:          uc.Analyze(c),
		Issues:            issues,
		ProductivityScore: workload.ProductivityScore(summary),
	}
}
