package gcalendar

import "time"

// DefaultCalendarID addresses the authenticated user's main calendar and
// is used whenever a request leaves CalendarID empty.
const DefaultCalendarID = "primary"

const (
	dateLayout     = "2006-01-02"
	reminderMethod = "popup"
)

type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	// Timezone is an IANA name. Empty lets the calendar use its own.
	Timezone string
	// ReminderMinutes adds a popup reminder; zero keeps the calendar default.
	ReminderMinutes int64
}

// ListEventsRequest selects expanded single events. Zero bounds are open.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	Query      string
}

type FreeBusyRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Timezone   string
}

// Event is the part of a calendar event DevFlow reads. All-day events keep
// their dates in StartTime/EndTime at UTC midnight.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Link        string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// Duration is zero for all-day events, which never count as booked time.
func (e Event) Duration() time.Duration {
	if e.AllDay {
		return 0
	}
	return e.EndTime.Sub(e.StartTime)
}

// Period is a busy interval, half-open [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
}
