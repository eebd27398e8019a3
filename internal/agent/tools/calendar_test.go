package tools_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"devflow/internal/agent/tools"
	"devflow/pkg/gcalendar"
)

func calendarOpts(t *testing.T) tools.CalendarOptions {
	return tools.CalendarOptions{
		Clock:          testClock(),
		Parser:         testParser(t),
		WorkHoursStart: 9,
		WorkHoursEnd:   17,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, 0, 0, time.UTC)
}

func TestCreateCalendarEventTool(t *testing.T) {
	ctx := context.Background()
	client := &mockCalendarClient{}
	tool := tools.NewCreateCalendarEventTool(client, calendarOpts(t), &mockLogger{})

	res, err := tool.Execute(ctx, map[string]interface{}{
		"summary":        "Deep work",
		"start_time":     "2024-05-01T13:00:00Z",
		"duration_hours": 1.5,
		"event_type":     "learning",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if client.created.Summary != "📚 Deep work" {
		t.Errorf("title = %q, want emoji prefix", client.created.Summary)
	}
	if client.created.Description != "Learning session" {
		t.Errorf("description = %q", client.created.Description)
	}
	if client.created.ReminderMinutes != 10 {
		t.Errorf("reminder = %d, want 10", client.created.ReminderMinutes)
	}
	if got := client.created.EndTime.Sub(client.created.StartTime); got != 90*time.Minute {
		t.Errorf("duration = %v, want 1h30m", got)
	}

	summary := summaryOf(t, res)
	for _, want := range []string{"✅ Calendar event created!", "📚 Deep work", "May 01, 2024 at 01:00 PM - 02:30 PM", "Duration: 1.5h", "https://calendar.example/evt-1"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestCreateCalendarEventTool_Defaults(t *testing.T) {
	client := &mockCalendarClient{}
	tool := tools.NewCreateCalendarEventTool(client, calendarOpts(t), &mockLogger{})

	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"summary":        "Standup",
		"start_time":     "2024-05-01T10:00:00Z",
		"duration_hours": "0.25",
		"event_type":     "party",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if client.created.Summary != "📌 Standup" {
		t.Errorf("unknown type should use the default emoji, got %q", client.created.Summary)
	}
	if client.created.CalendarID != gcalendar.DefaultCalendarID {
		t.Errorf("calendar id = %q", client.created.CalendarID)
	}
}

func TestCreateCalendarEventTool_DescriptionFromType(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		want      string
	}{
		{"ascii", "meeting", "Meeting session"},
		{"accented first letter", "échange", "Échange session"},
		{"non latin", "встреча", "Встреча session"},
		{"no case", "学习", "学习 session"},
		{"empty defaults to coding", "", "Coding session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockCalendarClient{}
			tool := tools.NewCreateCalendarEventTool(client, calendarOpts(t), &mockLogger{})

			_, err := tool.Execute(context.Background(), map[string]interface{}{
				"summary":        "Sync",
				"start_time":     "2024-05-01T10:00:00Z",
				"duration_hours": 1,
				"event_type":     tt.eventType,
			})
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !utf8.ValidString(client.created.Description) {
				t.Fatalf("description is not valid UTF-8: %q", client.created.Description)
			}
			if client.created.Description != tt.want {
				t.Errorf("description = %q, want %q", client.created.Description, tt.want)
			}
		})
	}
}

func TestCreateCalendarEventTool_Errors(t *testing.T) {
	ctx := context.Background()

	tool := tools.NewCreateCalendarEventTool(&mockCalendarClient{}, calendarOpts(t), &mockLogger{})
	_, err := tool.Execute(ctx, map[string]interface{}{"summary": "x", "start_time": "after lunch", "duration_hours": 1})
	if !errors.Is(err, tools.ErrInvalidInput) {
		t.Errorf("unresolved start_time: error = %v", err)
	}

	failing := tools.NewCreateCalendarEventTool(&mockCalendarClient{err: errors.New("quota exceeded")}, calendarOpts(t), &mockLogger{})
	_, err = failing.Execute(ctx, map[string]interface{}{"summary": "x", "start_time": "2024-05-01T10:00:00Z", "duration_hours": 1})
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("expected client error to propagate, got %v", err)
	}
}

func TestGetCalendarEventsTool(t *testing.T) {
	ctx := context.Background()

	t.Run("schedule", func(t *testing.T) {
		client := &mockCalendarClient{events: []gcalendar.Event{
			{Summary: "💻 Coding", StartTime: at(10, 0), EndTime: at(12, 0), Description: "Refactor the parser"},
			{Summary: "Holiday", StartTime: at(0, 0), EndTime: at(0, 0).AddDate(0, 0, 1), AllDay: true},
		}}
		tool := tools.NewGetCalendarEventsTool(client, calendarOpts(t), &mockLogger{})

		res, err := tool.Execute(ctx, map[string]interface{}{"date": "tomorrow"})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !client.listed.TimeMin.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("TimeMin = %v, want start of tomorrow", client.listed.TimeMin)
		}
		if client.listed.MaxResults != 10 {
			t.Errorf("MaxResults = %d", client.listed.MaxResults)
		}

		out := res.(tools.GetCalendarEventsOutput)
		if out.TotalHours != 2 {
			t.Errorf("TotalHours = %v, want 2 (all-day events count zero)", out.TotalHours)
		}
		for _, want := range []string{"📅 Schedule for May 02, 2024:", "🕐 10:00 AM - 12:00 PM\n   💻 Coding (2.0h)", "📝 Refactor the parser...", "All day"} {
			if !strings.Contains(out.Summary, want) {
				t.Errorf("summary missing %q:\n%s", want, out.Summary)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		tool := tools.NewGetCalendarEventsTool(&mockCalendarClient{}, calendarOpts(t), &mockLogger{})
		res, err := tool.Execute(ctx, map[string]interface{}{})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if got := summaryOf(t, res); got != "📅 No events scheduled for today" {
			t.Errorf("summary = %q", got)
		}
	})
}

func TestFindFreeTimeSlotsTool(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		busy      []gcalendar.Period
		input     map[string]interface{}
		wantSlots int
		wantText  string
	}{
		{
			name:      "free day",
			input:     map[string]interface{}{},
			wantSlots: 1,
			wantText:  "1. 09:00 AM - 05:00 PM (8.0h available)",
		},
		{
			name: "gaps around meetings",
			busy: []gcalendar.Period{
				{Start: at(10, 0), End: at(11, 0)},
				{Start: at(13, 0), End: at(14, 0)},
			},
			input:     map[string]interface{}{"duration_hours": 2},
			wantSlots: 2,
			wantText:  "2. 02:00 PM - 05:00 PM (3.0h available)",
		},
		{
			name: "overlapping busy periods",
			busy: []gcalendar.Period{
				{Start: at(9, 0), End: at(12, 0)},
				{Start: at(11, 0), End: at(13, 0)},
			},
			input:     map[string]interface{}{"duration_hours": 4},
			wantSlots: 1,
			wantText:  "1. 01:00 PM - 05:00 PM (4.0h available)",
		},
		{
			name:      "nothing long enough",
			busy:      []gcalendar.Period{{Start: at(9, 30), End: at(16, 30)}},
			input:     map[string]interface{}{"duration_hours": 1},
			wantSlots: 0,
			wantText:  "❌ No free slots of 1h found on today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := tools.NewFindFreeTimeSlotsTool(&mockCalendarClient{busy: tt.busy}, calendarOpts(t), &mockLogger{})
			res, err := tool.Execute(ctx, tt.input)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			out := res.(tools.FindFreeTimeSlotsOutput)
			if len(out.Slots) != tt.wantSlots {
				t.Errorf("slots = %d, want %d", len(out.Slots), tt.wantSlots)
			}
			if !strings.Contains(out.Summary, tt.wantText) {
				t.Errorf("summary missing %q:\n%s", tt.wantText, out.Summary)
			}
		})
	}
}

func TestFindFreeTimeSlotsTool_InvalidHours(t *testing.T) {
	tool := tools.NewFindFreeTimeSlotsTool(&mockCalendarClient{}, calendarOpts(t), &mockLogger{})
	_, err := tool.Execute(context.Background(), map[string]interface{}{"work_hours_start": 18, "work_hours_end": 9})
	if !errors.Is(err, tools.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestDeleteCalendarEventTool(t *testing.T) {
	ctx := context.Background()

	client := &mockCalendarClient{events: []gcalendar.Event{{ID: "e1", Summary: "👥 Sprint review"}, {ID: "e2", Summary: "👥 Sprint review"}}}
	tool := tools.NewDeleteCalendarEventTool(client, calendarOpts(t), &mockLogger{})

	res, err := tool.Execute(ctx, map[string]interface{}{"event_summary": "Sprint review"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if client.deleted != "e1" {
		t.Errorf("deleted %q, want the first match", client.deleted)
	}
	if client.listed.Query != "Sprint review" || !client.listed.TimeMin.Equal(fixedNow) {
		t.Errorf("unexpected search: %+v", client.listed)
	}
	if got := summaryOf(t, res); got != "✅ Event deleted: 👥 Sprint review" {
		t.Errorf("summary = %q", got)
	}

	empty := tools.NewDeleteCalendarEventTool(&mockCalendarClient{}, calendarOpts(t), &mockLogger{})
	res, err = empty.Execute(ctx, map[string]interface{}{"event_summary": "Lunch"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := summaryOf(t, res); got != "❌ No event found with title: Lunch" {
		t.Errorf("summary = %q", got)
	}
}
