package ollama

import "context"

// IOllama is a client for a local Ollama daemon.
type IOllama interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
	// Ping reports whether the daemon is reachable and the model is pulled.
	Ping(ctx context.Context) error
	Model() string
}

var _ IOllama = (*Client)(nil)
