package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devflow/internal/agent"
	"devflow/internal/agent/validator"
	"devflow/pkg/datemath"
	"devflow/pkg/gcalendar"
	pkgLog "devflow/pkg/log"
)

const (
	defaultEventReminder = 10
	defaultMaxEvents     = 10
	defaultSlotHours     = 2.0
)

// eventTypeEmoji prefixes event titles by kind of work.
var eventTypeEmoji = map[string]string{
	"coding":   "💻",
	"meeting":  "👥",
	"break":    "☕",
	"learning": "📚",
	"review":   "👀",
}

const defaultEventEmoji = "📌"

// CalendarOptions are shared by every calendar tool.
type CalendarOptions struct {
	CalendarID     string
	Clock          Clock
	Parser         *datemath.Parser
	WorkHoursStart int
	WorkHoursEnd   int
}

func (o CalendarOptions) calendarID() string {
	if o.CalendarID == "" {
		return gcalendar.DefaultCalendarID
	}
	return o.CalendarID
}

// resolveDay turns "today", "tomorrow", "YYYY-MM-DD" or a relative phrase into midnight of that day.
func (o CalendarOptions) resolveDay(date string) (time.Time, error) {
	now := o.Clock.now()
	if strings.TrimSpace(date) == "" {
		return startOfDay(now), nil
	}
	if o.Parser == nil {
		return time.Time{}, fmt.Errorf("%w: no date parser configured", ErrInvalidInput)
	}
	day, err := o.Parser.Parse(date, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return day.In(o.Clock.location()), nil
}

type CreateCalendarEventTool struct {
	calendar CalendarClient
	opts     CalendarOptions
	l        pkgLog.Logger
}

func NewCreateCalendarEventTool(calendar CalendarClient, opts CalendarOptions, l pkgLog.Logger) *CreateCalendarEventTool {
	return &CreateCalendarEventTool{calendar: calendar, opts: opts, l: l}
}

func (t *CreateCalendarEventTool) Name() string {
	return validator.ToolCreateCalendarEvent
}

func (t *CreateCalendarEventTool) Description() string {
	return "Create a Google Calendar event. Use for coding sessions, meetings, breaks, learning or review blocks."
}

func (t *CreateCalendarEventTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{
		validator.ArgSummary:       schemaString("Event title"),
		validator.ArgStartTime:     schemaString("Start time: ISO timestamp or phrase such as 'after lunch', 'at 3pm', 'in 2 hours'"),
		validator.ArgDurationHours: schemaNumber("Duration in hours, between 0.25 and 12"),
		"description":              schemaString("Optional event description"),
		"event_type": map[string]interface{}{
			"type":        "string",
			"description": "Kind of event",
			"enum":        []string{"coding", "meeting", "break", "learning", "review"},
		},
	}, validator.ArgSummary, validator.ArgStartTime, validator.ArgDurationHours)
}

type CreateCalendarEventInput struct {
	Summary       string    `json:"summary"`
	StartTime     string    `json:"start_time"`
	DurationHours flexFloat `json:"duration_hours"`
	Description   string    `json:"description"`
	EventType     string    `json:"event_type"`
}

type CreateCalendarEventOutput struct {
	Result
	EventID string    `json:"event_id"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Link    string    `json:"link,omitempty"`
}

func (t *CreateCalendarEventTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	if t.calendar == nil {
		return nil, ErrCalendarUnavailable
	}

	var params CreateCalendarEventInput
	if err := decode(input, &params); err != nil {
		return nil, err
	}

	start, err := time.Parse(time.RFC3339, params.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time %q is not a timestamp", ErrInvalidInput, params.StartTime)
	}
	loc := t.opts.Clock.location()
	start = start.In(loc)
	hours := params.DurationHours.Or(1)
	end := start.Add(time.Duration(hours * float64(time.Hour)))

	eventType := strings.ToLower(strings.TrimSpace(params.EventType))
	if eventType == "" {
		eventType = "coding"
	}
	emoji, ok := eventTypeEmoji[eventType]
	if !ok {
		emoji = defaultEventEmoji
	}
	description := params.Description
	if description == "" {
		description = capitalize(eventType) + " session"
	}

	t.l.Infof(ctx, "create_calendar_event: %q at %s for %sh", params.Summary, start.Format(time.RFC3339), formatHours(hours))

	event, err := t.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:      t.opts.calendarID(),
		Summary:         emoji + " " + params.Summary,
		Description:     description,
		StartTime:       start,
		EndTime:         end,
		Timezone:        loc.String(),
		ReminderMinutes: defaultEventReminder,
	})
	if err != nil {
		t.l.Errorf(ctx, "create_calendar_event: failed to create event: %v", err)
		return nil, fmt.Errorf("creating event: %w", err)
	}

	summary := fmt.Sprintf("✅ Calendar event created!\n\n📅 %s\n🕐 %s - %s\n⏱️ Duration: %sh\n🔗 Link: %s",
		event.Summary,
		start.Format(dayTimeLayout),
		end.Format(clockLayout),
		formatHours(hours),
		event.Link)

	return CreateCalendarEventOutput{
		Result:  Result{Summary: summary},
		EventID: event.ID,
		Title:   event.Summary,
		Start:   start,
		End:     end,
		Link:    event.Link,
	}, nil
}

type GetCalendarEventsTool struct {
	calendar CalendarClient
	opts     CalendarOptions
	l        pkgLog.Logger
}

func NewGetCalendarEventsTool(calendar CalendarClient, opts CalendarOptions, l pkgLog.Logger) *GetCalendarEventsTool {
	return &GetCalendarEventsTool{calendar: calendar, opts: opts, l: l}
}

func (t *GetCalendarEventsTool) Name() string {
	return "get_calendar_events"
}

func (t *GetCalendarEventsTool) Description() string {
	return "Get calendar events for a day. Useful for checking the schedule or detecting conflicts."
}

func (t *GetCalendarEventsTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{
		"date":        schemaString("Day to show: 'today', 'tomorrow', 'next monday', 'in 3 days' or YYYY-MM-DD. Defaults to today."),
		"max_results": schemaNumber("Maximum number of events, default 10"),
	})
}

type GetCalendarEventsInput struct {
	Date       string    `json:"date"`
	MaxResults flexFloat `json:"max_results"`
}

type CalendarEvent struct {
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	AllDay      bool      `json:"all_day,omitempty"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description,omitempty"`
}

type GetCalendarEventsOutput struct {
	Result
	Date       string          `json:"date"`
	Events     []CalendarEvent `json:"events"`
	TotalHours float64         `json:"total_hours"`
}

func (t *GetCalendarEventsTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	if t.calendar == nil {
		return nil, ErrCalendarUnavailable
	}

	var params GetCalendarEventsInput
	if err := decode(input, &params); err != nil {
		return nil, err
	}
	if params.Date == "" {
		params.Date = "today"
	}

	day, err := t.opts.resolveDay(params.Date)
	if err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "get_calendar_events: %s (%s)", params.Date, day.Format(datemath.DateLayout))

	events, err := t.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: t.opts.calendarID(),
		TimeMin:    day,
		TimeMax:    day.AddDate(0, 0, 1),
		MaxResults: int64(params.MaxResults.Or(defaultMaxEvents)),
	})
	if err != nil {
		t.l.Errorf(ctx, "get_calendar_events: failed to get events: %v", err)
		return nil, fmt.Errorf("listing events: %w", err)
	}

	out := GetCalendarEventsOutput{Date: day.Format(datemath.DateLayout), Events: []CalendarEvent{}}
	if len(events) == 0 {
		out.Summary = fmt.Sprintf("📅 No events scheduled for %s", params.Date)
		return out, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Schedule for %s:\n\n", day.Format(dayLayout))
	for _, e := range events {
		hours := e.Duration().Hours()
		out.TotalHours += hours
		out.Events = append(out.Events, CalendarEvent{
			Title:       e.Summary,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			AllDay:      e.AllDay,
			Hours:       hours,
			Description: e.Description,
		})

		if e.AllDay {
			fmt.Fprintf(&b, "🗓️ All day\n   %s\n", e.Summary)
		} else {
			fmt.Fprintf(&b, "🕐 %s - %s\n   %s (%.1fh)\n",
				e.StartTime.In(day.Location()).Format(clockLayout),
				e.EndTime.In(day.Location()).Format(clockLayout),
				e.Summary, hours)
		}
		if e.Description != "" {
			fmt.Fprintf(&b, "   📝 %s...\n", truncate(e.Description, 50))
		}
		b.WriteString("\n")
	}
	out.Summary = strings.TrimSpace(b.String())

	return out, nil
}

type FindFreeTimeSlotsTool struct {
	calendar CalendarClient
	opts     CalendarOptions
	l        pkgLog.Logger
}

func NewFindFreeTimeSlotsTool(calendar CalendarClient, opts CalendarOptions, l pkgLog.Logger) *FindFreeTimeSlotsTool {
	if opts.WorkHoursStart == 0 && opts.WorkHoursEnd == 0 {
		opts.WorkHoursStart, opts.WorkHoursEnd = 9, 17
	}
	return &FindFreeTimeSlotsTool{calendar: calendar, opts: opts, l: l}
}

func (t *FindFreeTimeSlotsTool) Name() string {
	return "find_free_time_slots"
}

func (t *FindFreeTimeSlotsTool) Description() string {
	return "Find free time slots within working hours that are at least the requested length."
}

func (t *FindFreeTimeSlotsTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{
		"date":             schemaString("Day to check: 'today', 'tomorrow' or YYYY-MM-DD"),
		"duration_hours":   schemaNumber("Minimum slot length in hours, default 2"),
		"work_hours_start": schemaNumber("Start of the working day (hour)"),
		"work_hours_end":   schemaNumber("End of the working day (hour)"),
	})
}

type FindFreeTimeSlotsInput struct {
	Date           string    `json:"date"`
	DurationHours  flexFloat `json:"duration_hours"`
	WorkHoursStart flexFloat `json:"work_hours_start"`
	WorkHoursEnd   flexFloat `json:"work_hours_end"`
}

type FreeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Hours float64   `json:"hours"`
}

type FindFreeTimeSlotsOutput struct {
	Result
	Slots []FreeSlot `json:"slots"`
}

func (t *FindFreeTimeSlotsTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	if t.calendar == nil {
		return nil, ErrCalendarUnavailable
	}

	var params FindFreeTimeSlotsInput
	if err := decode(input, &params); err != nil {
		return nil, err
	}
	if params.Date == "" {
		params.Date = "today"
	}

	need := params.DurationHours.Or(defaultSlotHours)
	startHour := int(params.WorkHoursStart.Or(float64(t.opts.WorkHoursStart)))
	endHour := int(params.WorkHoursEnd.Or(float64(t.opts.WorkHoursEnd)))
	if need <= 0 || startHour < 0 || endHour > 24 || startHour >= endHour {
		return nil, fmt.Errorf("%w: working hours %d-%d, duration %sh", ErrInvalidInput, startHour, endHour, formatHours(need))
	}

	day, err := t.opts.resolveDay(params.Date)
	if err != nil {
		return nil, err
	}
	workStart := day.Add(time.Duration(startHour) * time.Hour)
	workEnd := day.Add(time.Duration(endHour) * time.Hour)

	t.l.Infof(ctx, "find_free_time_slots: %s %02d:00-%02d:00, need %sh", params.Date, startHour, endHour, formatHours(need))

	busy, err := t.calendar.FreeBusy(ctx, gcalendar.FreeBusyRequest{
		CalendarID: t.opts.calendarID(),
		TimeMin:    workStart,
		TimeMax:    workEnd,
		Timezone:   day.Location().String(),
	})
	if err != nil {
		t.l.Errorf(ctx, "find_free_time_slots: freebusy query failed: %v", err)
		return nil, fmt.Errorf("querying free/busy: %w", err)
	}

	slots := freeSlots(workStart, workEnd, busy, need)
	out := FindFreeTimeSlotsOutput{Slots: slots}
	if len(slots) == 0 {
		out.Summary = fmt.Sprintf("❌ No free slots of %sh found on %s", formatHours(need), params.Date)
		return out, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✨ Available time slots for %s (%sh+ needed):\n\n", params.Date, formatHours(need))
	for i, s := range slots {
		fmt.Fprintf(&b, "%d. %s - %s (%.1fh available)\n", i+1,
			s.Start.In(day.Location()).Format(clockLayout),
			s.End.In(day.Location()).Format(clockLayout),
			s.Hours)
	}
	b.WriteString("\n💡 Use create_calendar_event with one of these times")
	out.Summary = b.String()

	return out, nil
}

// freeSlots returns the gaps of at least need hours between busy periods,
// clipped to [from, to). Busy periods are expected in start order.
func freeSlots(from, to time.Time, busy []gcalendar.Period, need float64) []FreeSlot {
	slots := []FreeSlot{}
	cursor := from
	add := func(end time.Time) {
		if h := end.Sub(cursor).Hours(); h >= need {
			slots = append(slots, FreeSlot{Start: cursor, End: end, Hours: h})
		}
	}
	for _, p := range busy {
		if !p.End.After(cursor) {
			continue
		}
		if p.Start.After(cursor) {
			add(minTime(p.Start, to))
		}
		cursor = p.End
		if !cursor.Before(to) {
			return slots
		}
	}
	add(to)
	return slots
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

type DeleteCalendarEventTool struct {
	calendar CalendarClient
	opts     CalendarOptions
	l        pkgLog.Logger
}

func NewDeleteCalendarEventTool(calendar CalendarClient, opts CalendarOptions, l pkgLog.Logger) *DeleteCalendarEventTool {
	return &DeleteCalendarEventTool{calendar: calendar, opts: opts, l: l}
}

func (t *DeleteCalendarEventTool) Name() string {
	return "delete_calendar_event"
}

func (t *DeleteCalendarEventTool) Description() string {
	return "Delete the next upcoming calendar event whose title matches."
}

func (t *DeleteCalendarEventTool) Parameters() map[string]interface{} {
	return schemaObject(map[string]interface{}{
		"event_summary": schemaString("Title (or part of it) of the event to delete"),
	}, "event_summary")
}

type DeleteCalendarEventInput struct {
	EventSummary string `json:"event_summary"`
}

type DeleteCalendarEventOutput struct {
	Result
	Deleted bool   `json:"deleted"`
	EventID string `json:"event_id,omitempty"`
}

func (t *DeleteCalendarEventTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	if t.calendar == nil {
		return nil, ErrCalendarUnavailable
	}

	var params DeleteCalendarEventInput
	if err := decode(input, &params); err != nil {
		return nil, err
	}
	params.EventSummary = strings.TrimSpace(params.EventSummary)
	if params.EventSummary == "" {
		return nil, fmt.Errorf("%w: event_summary is required", ErrInvalidInput)
	}

	t.l.Infof(ctx, "delete_calendar_event: looking for %q", params.EventSummary)

	events, err := t.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: t.opts.calendarID(),
		TimeMin:    t.opts.Clock.now(),
		MaxResults: defaultMaxEvents,
		Query:      params.EventSummary,
	})
	if err != nil {
		t.l.Errorf(ctx, "delete_calendar_event: failed to search events: %v", err)
		return nil, fmt.Errorf("searching events: %w", err)
	}
	if len(events) == 0 {
		return DeleteCalendarEventOutput{
			Result: Result{Summary: fmt.Sprintf("❌ No event found with title: %s", params.EventSummary)},
		}, nil
	}

	target := events[0]
	if err := t.calendar.DeleteEvent(ctx, t.opts.calendarID(), target.ID); err != nil {
		t.l.Errorf(ctx, "delete_calendar_event: failed to delete %s: %v", target.ID, err)
		return nil, fmt.Errorf("deleting event: %w", err)
	}

	return DeleteCalendarEventOutput{
		Result:  Result{Summary: fmt.Sprintf("✅ Event deleted: %s", target.Summary)},
		Deleted: true,
		EventID: target.ID,
	}, nil
}

var (
	_ agent.Tool = (*CreateCalendarEventTool)(nil)
	_ agent.Tool = (*GetCalendarEventsTool)(nil)
	_ agent.Tool = (*FindFreeTimeSlotsTool)(nil)
	_ agent.Tool = (*DeleteCalendarEventTool)(nil)
)
