package deepseek

import "context"

// IDeepSeek calls an OpenAI-compatible chat/completions endpoint.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IDeepSeek = (*Client)(nil)
