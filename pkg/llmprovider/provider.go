package llmprovider

import (
	"context"
	"strings"

	"devflow/config"
)

// Provider is one model backend. Adapters translate the neutral types below
// into their vendor's wire format; Manager chains several of them.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Name() string
	Model() string
}

const (
	ProviderGemini   = config.ProviderGemini
	ProviderDeepSeek = config.ProviderDeepSeek
	ProviderOllama   = config.ProviderOllama
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	// RoleTool messages carry FunctionResponse parts only.
	RoleTool = "tool"
)

type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Message is one conversation turn. A part holds exactly one of text, a
// call or a call result.
type Message struct {
	Role  string
	Parts []Part
}

type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool declares a callable action. Parameters is a JSON Schema object.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// FunctionCall is an action the model asked for. The matching
// FunctionResponse echoes its ID.
type FunctionCall struct {
	ID   string
	Name string
	Args map[string]any
}

type FunctionResponse struct {
	ID       string
	Name     string
	Response any
}

// Text joins the non-empty text parts with newlines.
func (m Message) Text() string {
	texts := make([]string, 0, len(m.Parts))
	for _, p := range m.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}

// FunctionCalls copies the call parts out in order.
func (m Message) FunctionCalls() []FunctionCall {
	var calls []FunctionCall
	for _, p := range m.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, *p.FunctionCall)
		}
	}
	return calls
}
