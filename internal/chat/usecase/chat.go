package usecase

import (
	"context"
	"strings"
	"time"

	"devflow/internal/agent/classifier"
	"devflow/internal/agent/orchestrator"
	"devflow/internal/chat"
	"devflow/internal/model"
	"devflow/pkg/langfuse"
	"devflow/pkg/metrics"
)

// Chat runs one turn against the session's conversation and stores the
// result. A failed turn is still stored; its error is returned alongside the
// output so the caller can report it.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	start := time.Now()
	defer func() { metrics.ChatDuration.Observe(time.Since(start).Seconds()) }()

	if strings.TrimSpace(input.Message) == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uc.newID()
	}

	conv, err := uc.loadConversation(ctx, sessionID, input.State)
	if err != nil {
		return chat.ChatOutput{}, err
	}

	include := true
	if input.IncludeAnalysis != nil {
		include = *input.IncludeAnalysis
	}

	out, err := uc.runner.Run(ctx, orchestrator.RunInput{
		Utterance:       input.Message,
		Conversation:    conv,
		IncludeAnalysis: include,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Chat: Run: %v", err)
		return chat.ChatOutput{}, err
	}

	final := out.FinalText()
	tag := classifier.ClassifySimple(final)
	metrics.ClassificationsTotal.WithLabelValues(metrics.VariantSimple, string(tag)).Inc()

	if err := uc.repo.SaveSession(ctx, sessionID, out.Conversation); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Chat: SaveSession %s: %v", sessionID, err)
	}

	uc.trace(ctx, sessionID, input.Message, final, tag, out)

	return chat.ChatOutput{
		Response:       final,
		Classification: tag,
		SessionID:      sessionID,
		State:          out.Conversation,
		DailySummary:   out.DailySummary,
		Workload:       out.Effort,
	}, out.Err
}

func (uc *implUseCase) loadConversation(ctx context.Context, sessionID string, state *model.Conversation) (*model.Conversation, error) {
	if state != nil {
		return state, nil
	}
	conv, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.loadConversation: GetSession %s: %v", sessionID, err)
		return nil, err
	}
	if conv == nil {
		conv = model.NewConversation()
	}
	return conv, nil
}

// trace records the turn without holding up the response. The request
// context is detached so the trace survives the client disconnecting.
func (uc *implUseCase) trace(ctx context.Context, sessionID, input, output string, tag model.Classification, out orchestrator.RunOutput) {
	if uc.sink == nil {
		return
	}

	meta := map[string]interface{}{
		"classification": string(tag),
		"iterations":     out.Iterations,
		"analyzed":       out.Analyzed,
		"model":          uc.runner.ModelName(),
	}
	if out.Effort != nil {
		meta["workload_tier"] = string(out.Effort.Snapshot.Tier)
	}
	if out.Err != nil {
		meta["error"] = out.Err.Error()
	}
	tr := langfuse.Trace{
		Name:      chat.TraceName,
		SessionID: sessionID,
		Input:     input,
		Output:    output,
		Metadata:  meta,
		Tags:      []string{string(tag)},
	}

	bg := context.WithoutCancel(ctx)
	uc.traces.Add(1)
	go func() {
		defer uc.traces.Done()
		tctx, cancel := context.WithTimeout(bg, uc.traceTimeout)
		defer cancel()
		if err := uc.sink.Record(tctx, tr); err != nil {
			uc.l.Warnf(tctx, "chat.usecase.trace: %v", err)
		}
	}()
}
