package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"devflow/internal/model"
	"devflow/pkg/llmprovider"
	"devflow/pkg/metrics"
)

// Run appends the utterance to the conversation and alternates between
// asking the model and executing its valid actions until the model answers
// without actions. Turn failures are reported in RunOutput.Err; the error
// result is only for input the loop cannot start with.
func (o *Orchestrator) Run(ctx context.Context, in RunInput) (RunOutput, error) {
	if strings.TrimSpace(in.Utterance) == "" {
		return RunOutput{}, ErrEmptyUtterance
	}

	conv := in.Conversation
	if conv == nil {
		conv = model.NewConversation()
	}
	firstRecord := len(conv.ActionRecords)
	conv.Append(model.Message{Role: model.RoleUser, Content: in.Utterance})

	out := RunOutput{Conversation: conv}
	iterations, err := o.loop(ctx, conv)
	out.Iterations = iterations
	metrics.TurnIterations.Observe(float64(iterations))

	if err != nil {
		o.l.Errorf(ctx, "orchestrator.Run: %v", err)
		conv.Append(model.Message{Role: model.RoleAssistant, Content: ErrorMarker + err.Error()})
		out.Err = err
		out.Classification = model.ClassificationError
		return out, nil
	}

	o.enrich(ctx, in, conv.ActionRecords[firstRecord:], &out)
	return out, nil
}

// loop runs Deciding/Acting rounds and returns the number of model calls.
func (o *Orchestrator) loop(ctx context.Context, conv *model.Conversation) (int, error) {
	for step := 1; step <= o.maxIterations; step++ {
		o.l.Debugf(ctx, "orchestrator.loop: step %d/%d", step, o.maxIterations)

		resp, err := o.llm.GenerateContent(ctx, o.buildRequest(conv))
		if err == nil && resp == nil {
			err = llmprovider.ErrEmptyResponse
		}
		if err != nil {
			return step, fmt.Errorf("%w: %w", ErrModelInvocation, err)
		}

		msg := o.decide(resp.Content, conv)
		conv.Append(msg)
		if len(msg.Actions) == 0 {
			o.l.Infof(ctx, "orchestrator.loop: finished after %d step(s)", step)
			return step, nil
		}

		o.act(ctx, conv, msg.Actions)
	}

	o.l.Warnf(ctx, "orchestrator.loop: exceeded %d steps", o.maxIterations)
	return o.maxIterations, fmt.Errorf("%w: %d model calls without a final answer", ErrIterationLimit, o.maxIterations)
}

// decide turns a model reply into an assistant message. Every proposed call
// becomes an Action, validated and recorded in proposal order.
func (o *Orchestrator) decide(reply llmprovider.Message, conv *model.Conversation) model.Message {
	msg := model.Message{Role: model.RoleAssistant, Content: reply.Text()}

	for _, fc := range reply.FunctionCalls() {
		action := model.Action{ID: fc.ID, Name: fc.Name, Args: fc.Args}
		if action.ID == "" {
			action.ID = o.newID()
		}

		if _, ok := o.catalog.Lookup(fc.Name); !ok {
			action.Reason = fmt.Sprintf(unknownActionFormat, fc.Name)
		} else {
			res := o.validator.Validate(fc.Name, fc.Args)
			action.Args = res.Args
			action.Valid = res.OK
			action.Reason = res.Reason
		}

		status := model.ActionValid
		if !action.Valid {
			status = model.ActionInvalid
			metrics.ToolCallsTotal.WithLabelValues(fc.Name, metrics.StatusInvalid).Inc()
		}
		conv.Record(model.ActionRecord{
			Name:   action.Name,
			Args:   action.Args,
			Status: status,
			Reason: action.Reason,
			At:     o.now(),
		})
		msg.Actions = append(msg.Actions, action)
	}
	return msg
}

// act resolves a batch in proposal order: one observation per action.
// Invalid actions are not executed; their observation is the rejection reason.
func (o *Orchestrator) act(ctx context.Context, conv *model.Conversation, actions []model.Action) {
	for _, action := range actions {
		obs := model.Message{Role: model.RoleTool, ActionID: action.ID, ActionName: action.Name}

		if !action.Valid {
			obs.Content = ObservationErrorPrefix + fmt.Sprintf(validationFailedFormat, action.Name, action.Reason)
			conv.Append(obs)
			continue
		}

		tool, _ := o.catalog.Lookup(action.Name)
		start := time.Now()
		result, err := tool.Execute(ctx, action.Args)
		metrics.ToolDuration.WithLabelValues(action.Name).Observe(time.Since(start).Seconds())

		if err != nil {
			o.l.Warnf(ctx, "orchestrator.act: %s failed: %v", action.Name, err)
			metrics.ToolCallsTotal.WithLabelValues(action.Name, metrics.StatusError).Inc()
			obs.Content = ObservationErrorPrefix + err.Error()
		} else {
			metrics.ToolCallsTotal.WithLabelValues(action.Name, metrics.StatusSuccess).Inc()
			obs.Content = observationText(result)
			obs.Result = result
		}
		conv.Append(obs)
	}
}

// observationText renders a tool result for the model.
func observationText(result any) string {
	switch r := result.(type) {
	case interface{ Text() string }:
		return r.Text()
	case string:
		return r
	case nil:
		return ""
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(raw)
}

// buildRequest renders the system instruction and the history for the model.
// System messages in the history are not forwarded; the instruction is rebuilt
// for every call.
func (o *Orchestrator) buildRequest(conv *model.Conversation) *llmprovider.Request {
	now := o.now().In(o.loc)
	system := llmprovider.Message{
		Role:  llmprovider.RoleSystem,
		Parts: []llmprovider.Part{{Text: buildSystemPrompt(now, o.catalog.Names())}},
	}

	msgs := make([]llmprovider.Message, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		switch m.Role {
		case model.RoleUser:
			msgs = append(msgs, llmprovider.Message{
				Role:  llmprovider.RoleUser,
				Parts: []llmprovider.Part{{Text: m.Content}},
			})
		case model.RoleAssistant:
			msg := llmprovider.Message{Role: llmprovider.RoleAssistant}
			if m.Content != "" {
				msg.Parts = append(msg.Parts, llmprovider.Part{Text: m.Content})
			}
			for _, a := range m.Actions {
				msg.Parts = append(msg.Parts, llmprovider.Part{FunctionCall: &llmprovider.FunctionCall{
					ID:   a.ID,
					Name: a.Name,
					Args: a.Args,
				}})
			}
			if len(msg.Parts) > 0 {
				msgs = append(msgs, msg)
			}
		case model.RoleTool:
			msgs = append(msgs, llmprovider.Message{
				Role: llmprovider.RoleTool,
				Parts: []llmprovider.Part{{FunctionResponse: &llmprovider.FunctionResponse{
					ID:       m.ActionID,
					Name:     m.ActionName,
					Response: m.Content,
				}}},
			})
		}
	}

	return &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          msgs,
		Tools:             o.catalog.Declarations(),
		Temperature:       o.temperature,
	}
}
