package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"devflow/internal/chat"
)

// Status runs every service check concurrently, each under its own timeout.
// A service without a check is reported as not configured.
func (uc *implUseCase) Status(ctx context.Context) chat.StatusOutput {
	checks := make([]chat.Check, len(uc.services))

	var g errgroup.Group
	for i, p := range uc.services {
		g.Go(func() error {
			checks[i] = uc.check(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	return chat.StatusOutput{
		Model:  uc.runner.ModelName(),
		Checks: checks,
	}
}

func (uc *implUseCase) check(ctx context.Context, p chat.Service) chat.Check {
	if p.Check == nil {
		return chat.Check{Name: p.Name, Reason: chat.ErrNotConfigured.Error()}
	}

	pctx, cancel := context.WithTimeout(ctx, uc.checkTimeout)
	defer cancel()
	if err := p.Check(pctx); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Status: %s: %v", p.Name, err)
		return chat.Check{Name: p.Name, Reason: err.Error()}
	}
	return chat.Check{Name: p.Name, OK: true}
}
