package orchestrator

import (
	"devflow/internal/model"
	"devflow/internal/workload"
)

// RunInput is one user turn.
type RunInput struct {
	Utterance string
	// Conversation is resumed in place when non-nil.
	Conversation *model.Conversation
	// IncludeAnalysis forces the post-loop enrichment.
	IncludeAnalysis bool
}

// RunOutput is the state after a turn. A failed turn still carries a
// complete conversation whose last message is the visible error, with Err
// set and Classification forced to error.
type RunOutput struct {
	Conversation   *model.Conversation
	Classification model.Classification
	// Analyzed reports whether the post-loop enrichment ran.
	Analyzed     bool
	DailySummary *workload.DailySummary
	Effort       *workload.Analysis
	Iterations   int
	Err          error
}

// FinalText returns the content of the last message.
func (o RunOutput) FinalText() string {
	if o.Conversation == nil {
		return ""
	}
	m, _ := o.Conversation.Last()
	return m.Content
}
