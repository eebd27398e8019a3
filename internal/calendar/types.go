package calendar

import "time"

// Event is one calendar entry of a day.
type Event struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	AllDay   bool
	Location string
	Link     string
}

// Hours is zero for all-day events.
func (e Event) Hours() float64 {
	if e.AllDay || !e.End.After(e.Start) {
		return 0
	}
	return e.End.Sub(e.Start).Hours()
}

// Day is the agenda of one local day. BookedHours sums the timed events.
type Day struct {
	Date        time.Time
	Events      []Event
	BookedHours float64
}
