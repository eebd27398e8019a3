package ollama

import "time"

const (
	// DefaultBaseURL is the local Ollama daemon
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is pulled by the setup script
	DefaultModel = "qwen2.5:7b"

	// DefaultTimeout covers slow local inference on CPU
	DefaultTimeout = 120 * time.Second

	DefaultNumCtx        = 8192
	DefaultRepeatPenalty = 1.1
)
