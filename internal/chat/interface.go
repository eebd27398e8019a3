package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat runs one conversation turn.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// Status checks the model provider and the external services.
	Status(ctx context.Context) StatusOutput
}
