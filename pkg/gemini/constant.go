package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 60 * time.Second

	apiKeyHeader = "x-goog-api-key"
)

// Roles accepted in contents.
const (
	RoleUser  = "user"
	RoleModel = "model"
)
