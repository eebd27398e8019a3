package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devflow/internal/calendar"
	"devflow/pkg/gcalendar"
)

func (uc *implUseCase) Day(ctx context.Context, date string) (calendar.Day, error) {
	if uc.client == nil {
		return calendar.Day{}, calendar.ErrNotConfigured
	}

	day, err := uc.resolve(date)
	if err != nil {
		return calendar.Day{}, err
	}

	items, err := uc.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    day,
		TimeMax:    day.AddDate(0, 0, 1),
		MaxResults: calendar.MaxEvents,
	})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.Day: %v", err)
		return calendar.Day{}, fmt.Errorf("%w: %w", calendar.ErrListFailed, err)
	}

	out := calendar.Day{Date: day, Events: make([]calendar.Event, 0, len(items))}
	for _, e := range items {
		ev := calendar.Event{
			ID:       e.ID,
			Title:    e.Summary,
			Start:    e.StartTime,
			End:      e.EndTime,
			AllDay:   e.AllDay,
			Location: e.Location,
			Link:     e.Link,
		}
		out.BookedHours += ev.Hours()
		out.Events = append(out.Events, ev)
	}
	return out, nil
}

// resolve returns local midnight of the named day.
func (uc *implUseCase) resolve(date string) (time.Time, error) {
	if strings.TrimSpace(date) == "" {
		date = "today"
	}
	if uc.parser == nil {
		return time.Time{}, fmt.Errorf("%w: no date parser configured", calendar.ErrInvalidDate)
	}
	day, err := uc.parser.Parse(date, uc.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", calendar.ErrInvalidDate, err)
	}
	return day, nil
}
