package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"devflow/internal/agent/orchestrator"
	"devflow/internal/chat"
	"devflow/internal/chat/repository"
	"devflow/pkg/langfuse"
	"devflow/pkg/log"
)

// Runner is the orchestration loop as seen by the chat boundary.
type Runner interface {
	Run(ctx context.Context, in orchestrator.RunInput) (orchestrator.RunOutput, error)
	ModelName() string
}

// Config wires optional collaborators. A nil Sink disables tracing.
type Config struct {
	Sink         langfuse.Sink
	Services     []chat.Service
	TraceTimeout time.Duration
	CheckTimeout time.Duration
}

type implUseCase struct {
	runner   Runner
	repo     repository.Repository
	sink     langfuse.Sink
	services []chat.Service
	l        log.Logger

	traceTimeout time.Duration
	checkTimeout time.Duration
	newID        func() string
	traces       sync.WaitGroup
}

// New creates the chat usecase.
func New(runner Runner, repo repository.Repository, cfg Config, l log.Logger) *implUseCase {
	uc := &implUseCase{
		runner:       runner,
		repo:         repo,
		sink:         cfg.Sink,
		services:     cfg.Services,
		l:            l,
		traceTimeout: cfg.TraceTimeout,
		checkTimeout: cfg.CheckTimeout,
		newID:        uuid.NewString,
	}
	if uc.traceTimeout <= 0 {
		uc.traceTimeout = chat.TraceTimeout
	}
	if uc.checkTimeout <= 0 {
		uc.checkTimeout = chat.CheckTimeout
	}
	return uc
}

// Flush waits for traces still in flight. Called on shutdown.
func (uc *implUseCase) Flush() {
	uc.traces.Wait()
}
