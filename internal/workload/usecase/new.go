package usecase

import (
	"time"

	"devflow/internal/workload"
	"devflow/pkg/log"
)

// DefaultSourceTimeout bounds each source read when Config leaves it unset.
const DefaultSourceTimeout = 5 * time.Second

// Config tunes the aggregator.
type Config struct {
	SourceTimeout time.Duration
	Location      *time.Location
	Now           func() time.Time
}

// Sources groups the three inputs. A nil source is recorded as not configured.
type Sources struct {
	Tasks    workload.TaskSource
	Calendar workload.CalendarSource
	Issues   workload.IssueSource
}

// implUseCase is the private implementation of workload.UseCase.
type implUseCase struct {
	src     Sources
	timeout time.Duration
	loc     *time.Location
	now     func() time.Time
	l       log.Logger
}

var _ workload.UseCase = (*implUseCase)(nil)

// New creates a new workload UseCase implementation.
func New(src Sources, cfg Config, l log.Logger) *implUseCase {
	uc := &implUseCase{
		src:     src,
		timeout: cfg.SourceTimeout,
		loc:     cfg.Location,
		now:     cfg.Now,
		l:       l,
	}
	if uc.timeout <= 0 {
		uc.timeout = DefaultSourceTimeout
	}
	if uc.loc == nil {
		uc.loc = time.UTC
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}
