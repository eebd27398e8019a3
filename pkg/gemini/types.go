package gemini

import "time"

type Config struct {
	APIKey  string
	Model   string // DefaultModel when empty
	BaseURL string // DefaultBaseURL when empty
	Timeout time.Duration
}

// Request is the caller-facing form of a generateContent call. The wire
// shape lives in wire.go.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

// Response keeps only the first candidate.
type Response struct {
	Content Content
	Usage   *Usage // nil when usageMetadata is absent
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Content is one turn. Role is RoleUser or RoleModel; function responses
// travel in user turns.
type Content struct {
	Role  string
	Parts []Part
}

// Part carries one of Text, FunctionCall or FunctionResponse.
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

type FunctionCall struct {
	ID   string
	Name string
	Args map[string]any
}

// FunctionResponse.Response may be any JSON value; non-objects are wrapped
// as {"result": value} on the wire.
type FunctionResponse struct {
	ID       string
	Name     string
	Response any
}

// Tool becomes one functionDeclarations entry.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}
