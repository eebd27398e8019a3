package tasks

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Overview lists the pending tasks and counts the whole list.
	Overview(ctx context.Context) (Overview, error)
}
