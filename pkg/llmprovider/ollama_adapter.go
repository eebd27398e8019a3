package llmprovider

import (
	"context"

	"devflow/pkg/ollama"
)

const ollamaToolType = "function"

// OllamaAdapter serves Provider over a local Ollama /api/chat.
type OllamaAdapter struct {
	client ollama.IOllama
}

func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

func (a *OllamaAdapter) Name() string  { return ProviderOllama }
func (a *OllamaAdapter) Model() string { return a.client.Model() }

func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	flat := flatten(req.SystemInstruction, req.Messages)
	chat := &ollama.ChatRequest{
		Messages: make([]ollama.Message, 0, len(flat)),
		Options:  &ollama.Options{Temperature: req.Temperature, NumPredict: req.MaxTokens},
	}
	for _, f := range flat {
		m := ollama.Message{Role: f.role, Content: f.content, ToolName: f.toolName}
		for _, fc := range f.calls {
			m.ToolCalls = append(m.ToolCalls, ollama.ToolCall{Function: ollama.FunctionCall{Name: fc.Name, Arguments: fc.Args}})
		}
		chat.Messages = append(chat.Messages, m)
	}
	for _, t := range req.Tools {
		chat.Tools = append(chat.Tools, ollama.Tool{
			Type:     ollamaToolType,
			Function: ollama.FunctionDef{Name: t.Name, Description: t.Description, Parameters: t.Parameters},
		})
	}

	resp, err := a.client.Chat(ctx, chat)
	if err != nil {
		return nil, err
	}

	calls := make([]FunctionCall, 0, len(resp.Message.ToolCalls))
	for _, tc := range resp.Message.ToolCalls {
		calls = append(calls, FunctionCall{Name: tc.Function.Name, Args: tc.Function.Arguments})
	}
	in, out := resp.PromptEvalCount, resp.EvalCount
	return &Response{
		Content:      replyMessage(resp.Message.Content, calls),
		ProviderName: ProviderOllama,
		ModelName:    a.client.Model(),
		Usage:        &Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out},
	}, nil
}
