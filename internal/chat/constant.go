package chat

import "time"

const (
	TraceName    = "devflow-chat"
	TraceTimeout = 5 * time.Second
	CheckTimeout = 5 * time.Second
)

// Service names reported by Status.
const (
	ServiceModel  = "model"
	ServiceGoogle = "google"
	ServiceGitHub = "github"
)
