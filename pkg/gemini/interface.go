package gemini

import "context"

// IGemini calls the generateContent endpoint. Safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IGemini = (*Client)(nil)
