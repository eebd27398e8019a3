package llmprovider

import (
	"context"
	"encoding/json"

	"devflow/pkg/deepseek"
)

// DeepSeekAdapter serves Provider over an OpenAI-compatible chat
// completions endpoint (DeepSeek, DashScope and similar).
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

func (a *DeepSeekAdapter) Name() string  { return ProviderDeepSeek }
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }

func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	flat := flatten(req.SystemInstruction, req.Messages)
	msgs := make([]deepseek.Message, 0, len(flat))
	for _, f := range flat {
		msgs = append(msgs, toDeepSeekMessage(f))
	}

	dsReq := &deepseek.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for _, t := range req.Tools {
		dsReq.Tools = append(dsReq.Tools, deepseek.Tool{
			Type:     deepseek.ToolTypeFunction,
			Function: deepseek.FunctionDef{Name: t.Name, Description: t.Description, Parameters: t.Parameters},
		})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      replyMessage("", nil),
		ProviderName: ProviderDeepSeek,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out, nil
	}

	reply := resp.Choices[0].Message
	calls := make([]FunctionCall, 0, len(reply.ToolCalls))
	for _, tc := range reply.ToolCalls {
		calls = append(calls, FunctionCall{ID: tc.ID, Name: tc.Function.Name, Args: decodeArguments(tc.Function.Arguments)})
	}
	out.Content = replyMessage(reply.Content, calls)
	return out, nil
}

func toDeepSeekMessage(f flatMessage) deepseek.Message {
	if f.role == RoleTool {
		return deepseek.Message{Role: RoleTool, ToolCallID: f.callID, Name: f.toolName, Content: f.content}
	}
	m := deepseek.Message{Role: f.role, Content: f.content}
	for _, fc := range f.calls {
		args, _ := json.Marshal(fc.Args)
		m.ToolCalls = append(m.ToolCalls, deepseek.ToolCall{
			ID:       fc.ID,
			Type:     deepseek.ToolTypeFunction,
			Function: deepseek.FunctionCall{Name: fc.Name, Arguments: string(args)},
		})
	}
	return m
}

// decodeArguments parses the JSON-encoded arguments string. Anything that
// is not a JSON object yields an empty map and is left to the validator.
func decodeArguments(raw string) map[string]any {
	args := map[string]any{}
	if raw == "" {
		return args
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{}
	}
	return args
}
