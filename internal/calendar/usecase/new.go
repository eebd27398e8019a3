package usecase

import (
	"context"
	"time"

	"devflow/internal/calendar"
	"devflow/pkg/datemath"
	"devflow/pkg/gcalendar"
	"devflow/pkg/log"
)

// EventLister is the Google Calendar call the agenda needs.
type EventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type Config struct {
	// CalendarID defaults to the primary calendar.
	CalendarID string
	Now        func() time.Time
}

type implUseCase struct {
	client     EventLister
	parser     *datemath.Parser
	calendarID string
	now        func() time.Time
	l          log.Logger
}

var _ calendar.UseCase = (*implUseCase)(nil)

// New creates the calendar usecase. Days are resolved in the parser's
// timezone. A nil client makes every call fail with calendar.ErrNotConfigured.
func New(client EventLister, parser *datemath.Parser, cfg Config, l log.Logger) *implUseCase {
	uc := &implUseCase{
		client:     client,
		parser:     parser,
		calendarID: cfg.CalendarID,
		now:        cfg.Now,
		l:          l,
	}
	if uc.calendarID == "" {
		uc.calendarID = gcalendar.DefaultCalendarID
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}
