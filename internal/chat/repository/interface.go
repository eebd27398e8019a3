package repository

import (
	"context"

	"devflow/internal/model"
)

// Repository stores conversation state per session.
type Repository interface {
	// GetSession returns nil, nil when the session does not exist or expired.
	GetSession(ctx context.Context, id string) (*model.Conversation, error)
	SaveSession(ctx context.Context, id string, conv *model.Conversation) error
	DeleteSession(ctx context.Context, id string) error
}
