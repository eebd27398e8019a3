package llmprovider

import (
	"context"

	"devflow/pkg/gemini"
)

// GeminiAdapter serves Provider over the Gemini generateContent API.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) Name() string  { return ProviderGemini }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var system *gemini.Content
	if req.SystemInstruction != nil {
		c := toGeminiContent(*req.SystemInstruction)
		system = &c
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: system,
		Messages:          toGeminiHistory(req.Messages),
		Tools:             toGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var (
		text  string
		calls []FunctionCall
	)
	for _, p := range resp.Content.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, FunctionCall{ID: p.FunctionCall.ID, Name: p.FunctionCall.Name, Args: p.FunctionCall.Args})
			continue
		}
		if p.Text != "" {
			if text != "" {
				text += "\n"
			}
			text += p.Text
		}
	}

	usage := &Usage{}
	if u := resp.Usage; u != nil {
		usage = &Usage{InputTokens: u.InputTokens, OutputTokens: u.OutputTokens, TotalTokens: u.TotalTokens}
	}
	return &Response{
		Content:      replyMessage(text, calls),
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// toGeminiHistory maps roles onto user/model and folds a run of tool
// messages into one user content: Gemini wants all responses to a batch
// of parallel calls in the same turn.
func toGeminiHistory(msgs []Message) []gemini.Content {
	out := make([]gemini.Content, 0, len(msgs))
	prevTool := false
	for _, m := range msgs {
		c := toGeminiContent(m)
		isTool := m.Role == RoleTool
		if isTool && prevTool {
			out[len(out)-1].Parts = append(out[len(out)-1].Parts, c.Parts...)
		} else {
			out = append(out, c)
		}
		prevTool = isTool
	}
	return out
}

func toGeminiContent(m Message) gemini.Content {
	role := gemini.RoleUser
	if m.Role == RoleAssistant {
		role = gemini.RoleModel
	}

	parts := make([]gemini.Part, 0, len(m.Parts))
	for _, p := range m.Parts {
		gp := gemini.Part{Text: p.Text}
		if fc := p.FunctionCall; fc != nil {
			gp.FunctionCall = &gemini.FunctionCall{ID: fc.ID, Name: fc.Name, Args: fc.Args}
		}
		if fr := p.FunctionResponse; fr != nil {
			gp.FunctionResponse = &gemini.FunctionResponse{ID: fr.ID, Name: fr.Name, Response: fr.Response}
		}
		parts = append(parts, gp)
	}
	return gemini.Content{Role: role, Parts: parts}
}

func toGeminiTools(tools []Tool) []gemini.Tool {
	out := make([]gemini.Tool, 0, len(tools))
	for _, t := range tools {
		out = append(out, gemini.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters})
	}
	return out
}
