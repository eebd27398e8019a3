package gcalendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type Client struct {
	events   *calendar.EventsService
	freebusy *calendar.FreebusyService
}

// New builds a client over the Calendar v3 API. opts carry the credentials,
// usually option.WithTokenSource.
func New(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: new service: %w", err)
	}
	return &Client{events: svc.Events, freebusy: svc.Freebusy}, nil
}

func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	body := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &calendar.EventDateTime{DateTime: req.StartTime.Format(time.RFC3339), TimeZone: req.Timezone},
		End:         &calendar.EventDateTime{DateTime: req.EndTime.Format(time.RFC3339), TimeZone: req.Timezone},
	}
	if req.ReminderMinutes > 0 {
		// UseDefault=false must be sent explicitly or the override is ignored.
		body.Reminders = &calendar.EventReminders{
			Overrides:       []*calendar.EventReminder{{Method: reminderMethod, Minutes: req.ReminderMinutes}},
			ForceSendFields: []string{"UseDefault"},
		}
	}

	created, err := c.events.Insert(calendarID(req.CalendarID), body).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: insert event: %w", err)
	}
	ev := fromAPI(created)
	ev.StartTime, ev.EndTime = req.StartTime, req.EndTime
	return &ev, nil
}

// ListEvents expands recurring events and orders them by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.events.List(calendarID(req.CalendarID)).SingleEvents(true).OrderBy("startTime")
	if !req.TimeMin.IsZero() {
		call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call.MaxResults(req.MaxResults)
	}
	if req.Query != "" {
		call.Q(req.Query)
	}

	page, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: list events: %w", err)
	}
	out := make([]Event, len(page.Items))
	for i, item := range page.Items {
		out[i] = fromAPI(item)
	}
	return out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	if err := c.events.Delete(calendarID(calID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gcalendar: delete event %s: %w", eventID, err)
	}
	return nil
}

// FreeBusy reports the busy periods of one calendar inside the window.
// Periods the API returns in an unparseable form are dropped.
func (c *Client) FreeBusy(ctx context.Context, req FreeBusyRequest) ([]Period, error) {
	id := calendarID(req.CalendarID)
	resp, err := c.freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin:  req.TimeMin.Format(time.RFC3339),
		TimeMax:  req.TimeMax.Format(time.RFC3339),
		TimeZone: req.Timezone,
		Items:    []*calendar.FreeBusyRequestItem{{Id: id}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: free/busy: %w", err)
	}

	var periods []Period
	for _, b := range resp.Calendars[id].Busy {
		start, errStart := time.Parse(time.RFC3339, b.Start)
		end, errEnd := time.Parse(time.RFC3339, b.End)
		if errStart != nil || errEnd != nil {
			continue
		}
		periods = append(periods, Period{Start: start, End: end})
	}
	return periods, nil
}

func calendarID(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}

func fromAPI(item *calendar.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Link:        item.HtmlLink,
	}
	ev.StartTime, ev.AllDay = eventTime(item.Start)
	ev.EndTime, _ = eventTime(item.End)
	return ev
}

// eventTime reads a timed (DateTime) or all-day (Date) boundary. The bool
// reports an all-day boundary.
func eventTime(dt *calendar.EventDateTime) (time.Time, bool) {
	if dt == nil {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, dt.DateTime); err == nil {
		return t, false
	}
	if t, err := time.Parse(dateLayout, dt.Date); err == nil {
		return t, true
	}
	return time.Time{}, false
}
