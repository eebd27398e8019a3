package chat

import (
	"context"

	"devflow/internal/model"
	"devflow/internal/workload"
)

// --- UseCase Inputs ---

// ChatInput is one user turn. State, when set, wins over the stored session.
// A nil IncludeAnalysis means true.
type ChatInput struct {
	Message         string
	SessionID       string
	State           *model.Conversation
	IncludeAnalysis *bool
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Response       string
	Classification model.Classification
	SessionID      string
	State          *model.Conversation
	DailySummary   *workload.DailySummary
	Workload       *workload.Analysis
}

// Service checks one dependency. A nil Check reports ErrNotConfigured.
type Service struct {
	Name  string
	Check func(ctx context.Context) error
}

// Check is the outcome of one Service check.
type Check struct {
	Name   string
	OK     bool
	Reason string
}

type StatusOutput struct {
	Model  string
	Checks []Check
}

// Healthy reports whether every check passed.
func (s StatusOutput) Healthy() bool {
	for _, c := range s.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}
