package orchestrator

import (
	"time"

	"github.com/google/uuid"

	"devflow/internal/agent"
	"devflow/internal/agent/validator"
	"devflow/internal/workload"
	"devflow/pkg/llmprovider"
	pkgLog "devflow/pkg/log"
)

// Validator checks a proposed action before it runs.
type Validator interface {
	Validate(name string, args map[string]any) validator.Result
}

// Config tunes the loop.
type Config struct {
	MaxIterations int
	Location      *time.Location
	Temperature   float64
	Now           func() time.Time
}

// Orchestrator drives the decide/act cycle between the model and the catalog.
type Orchestrator struct {
	llm       llmprovider.Provider
	catalog   *agent.Catalog
	validator Validator
	workload  workload.UseCase
	l         pkgLog.Logger

	maxIterations int
	loc           *time.Location
	temperature   float64
	now           func() time.Time
	newID         func() string
}

// New creates an Orchestrator. wl may be nil, in which case the enrichment
// only classifies.
func New(llm llmprovider.Provider, catalog *agent.Catalog, v Validator, wl workload.UseCase, cfg Config, l pkgLog.Logger) *Orchestrator {
	o := &Orchestrator{
		llm:           llm,
		catalog:       catalog,
		validator:     v,
		workload:      wl,
		l:             l,
		maxIterations: cfg.MaxIterations,
		loc:           cfg.Location,
		temperature:   cfg.Temperature,
		now:           cfg.Now,
		newID:         uuid.NewString,
	}
	if o.maxIterations <= 0 {
		o.maxIterations = DefaultMaxIterations
	}
	if o.loc == nil {
		o.loc = time.UTC
	}
	if o.now == nil {
		o.now = time.Now
	}
	return o
}

// ModelName reports the configured model.
func (o *Orchestrator) ModelName() string {
	return o.llm.Model()
}
