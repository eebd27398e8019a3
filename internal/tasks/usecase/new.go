package usecase

import (
	"context"
	"time"

	"devflow/internal/tasks"
	"devflow/pkg/gtasks"
	"devflow/pkg/log"
)

// Lister is the Google Tasks call the overview needs.
type Lister interface {
	ListTasks(ctx context.Context, req gtasks.ListTasksRequest) ([]gtasks.Task, error)
}

type Config struct {
	Location *time.Location
	Now      func() time.Time
}

type implUseCase struct {
	client Lister
	loc    *time.Location
	now    func() time.Time
	l      log.Logger
}

var _ tasks.UseCase = (*implUseCase)(nil)

// New creates the tasks usecase. A nil client makes every call fail with
// tasks.ErrNotConfigured.
func New(client Lister, cfg Config, l log.Logger) *implUseCase {
	uc := &implUseCase{client: client, loc: cfg.Location, now: cfg.Now, l: l}
	if uc.loc == nil {
		uc.loc = time.UTC
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}
