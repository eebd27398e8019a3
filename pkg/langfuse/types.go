package langfuse

import "time"

// Config holds the Langfuse project credentials.
type Config struct {
	Enabled   bool
	Host      string
	PublicKey string
	SecretKey string
	Timeout   time.Duration
}

// Trace is a single chat interaction.
type Trace struct {
	Name      string
	SessionID string
	Input     interface{}
	Output    interface{}
	Metadata  map[string]interface{}
	Tags      []string
}

type ingestionRequest struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string    `json:"id"`
	Timestamp string    `json:"timestamp"`
	Type      string    `json:"type"`
	Body      traceBody `json:"body"`
}

type traceBody struct {
	ID        string                 `json:"id"`
	Timestamp string                 `json:"timestamp"`
	Name      string                 `json:"name"`
	SessionID string                 `json:"sessionId,omitempty"`
	Input     interface{}            `json:"input,omitempty"`
	Output    interface{}            `json:"output,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Tags      []string               `json:"tags,omitempty"`
}

type ingestionResponse struct {
	Errors []struct {
		ID      string `json:"id"`
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"errors"`
}
