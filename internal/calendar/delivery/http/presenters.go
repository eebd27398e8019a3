package http

import (
	"time"

	"devflow/internal/calendar"
)

type eventResp struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	AllDay   bool      `json:"all_day"`
	Hours    float64   `json:"hours"`
	Location string    `json:"location,omitempty"`
	Link     string    `json:"link,omitempty"`
}

type dayResp struct {
	Date        string      `json:"date"`
	Events      []eventResp `json:"events"`
	EventCount  int         `json:"event_count"`
	BookedHours float64     `json:"booked_hours"`
}

func newDayResp(d calendar.Day) dayResp {
	out := dayResp{
		Date:        d.Date.Format(time.DateOnly),
		Events:      make([]eventResp, 0, len(d.Events)),
		EventCount:  len(d.Events),
		BookedHours: d.BookedHours,
	}
	for _, e := range d.Events {
		out.Events = append(out.Events, eventResp{
			ID:       e.ID,
			Title:    e.Title,
			Start:    e.Start,
			End:      e.End,
			AllDay:   e.AllDay,
			Hours:    e.Hours(),
			Location: e.Location,
			Link:     e.Link,
		})
	}
	return out
}
