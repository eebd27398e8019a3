package orchestrator

import (
	"context"
	"strings"

	"devflow/internal/agent/classifier"
	"devflow/internal/model"
	"devflow/pkg/metrics"
)

// IsPlanningRequest reports whether utterance matches a planning phrase.
func IsPlanningRequest(utterance string) bool {
	return containsAny(utterance, PlanningPhrases)
}

// IsEffortRequest reports whether utterance asks about workload.
func IsEffortRequest(utterance string) bool {
	return containsAny(utterance, EffortPhrases)
}

func containsAny(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// enrich runs when analysis was requested or the utterance is a planning
// request. It classifies the final answer against this turn's records, then
// collects the sources once for the daily summary and, on a planning or
// effort request, the workload report appended to the final answer.
func (o *Orchestrator) enrich(ctx context.Context, in RunInput, records []model.ActionRecord, out *RunOutput) {
	planning := IsPlanningRequest(in.Utterance)
	if !in.IncludeAnalysis && !planning {
		return
	}
	out.Analyzed = true

	conv := out.Conversation
	idx := conv.LastAssistantIndex()
	var final string
	if idx >= 0 {
		final = conv.Messages[idx].Content
	}

	out.Classification = classifier.Classify(final, records)
	metrics.ClassificationsTotal.WithLabelValues(metrics.VariantDetailed, string(out.Classification)).Inc()

	if o.workload == nil {
		return
	}

	col := o.workload.Collect(ctx)
	summary := o.workload.Summarize(col)
	out.DailySummary = &summary

	if !planning && !IsEffortRequest(in.Utterance) {
		return
	}
	analysis := o.workload.Analyze(col)
	out.Effort = &analysis
	if idx >= 0 {
		conv.Messages[idx].Content += "\n" + analysis.Report
	}
	o.l.Infof(ctx, "orchestrator.enrich: workload %s (%.1fh)", analysis.Snapshot.Tier, analysis.Snapshot.TotalHours)
}
