package gcalendar

import "context"

// ICalendar is the subset of the Calendar API used by DevFlow.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	FreeBusy(ctx context.Context, req FreeBusyRequest) ([]Period, error)
}

var _ ICalendar = (*Client)(nil)
