package source

import (
	"context"
	"fmt"
	"time"

	"devflow/internal/workload"
	"devflow/pkg/gcalendar"
)

const maxEvents = 50

// EventLister is the Google Calendar call the calendar source needs.
type EventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Calendar reads the timed events of a day.
type Calendar struct {
	client     EventLister
	calendarID string
}

var _ workload.CalendarSource = (*Calendar)(nil)

// NewCalendar creates a calendar source. An empty id means the primary calendar.
func NewCalendar(client EventLister, calendarID string) *Calendar {
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}
	return &Calendar{client: client, calendarID: calendarID}
}

// EventsOn lists events in [day, day+24h). All-day entries are skipped.
func (s *Calendar) EventsOn(ctx context.Context, day time.Time) ([]workload.ScheduledEvent, error) {
	events, err := s.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: s.calendarID,
		TimeMin:    day,
		TimeMax:    day.Add(24 * time.Hour),
		MaxResults: maxEvents,
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]workload.ScheduledEvent, 0, len(events))
	for _, e := range events {
		if e.AllDay {
			continue
		}
		out = append(out, workload.ScheduledEvent{Title: e.Summary, Start: e.StartTime, End: e.EndTime})
	}
	return out, nil
}
