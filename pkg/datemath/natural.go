package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	clockPattern    = regexp.MustCompile(`at (\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
	durationPattern = regexp.MustCompile(`in (\d+)\s*(hour|minute)s?`)
)

// timestampLayouts are accepted as already-absolute start times.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Resolver turns informal time phrases ("after lunch", "at 3pm", "in 2 hours")
// into absolute instants in a fixed location.
type Resolver struct {
	location *time.Location
	table    map[string]func(now time.Time) time.Time
}

// NewResolver creates a Resolver for the given IANA timezone.
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc, table: phraseTable()}, nil
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve never fails. First match wins: fixed phrase table, "at H[:MM][am|pm]",
// "in N hour(s)|minute(s)". Anything else comes back unresolved.
func (r *Resolver) Resolve(phrase string, now time.Time) Resolution {
	now = now.In(r.location)
	normalized := strings.ToLower(strings.TrimSpace(phrase))
	res := Resolution{Input: phrase}

	if fn, ok := r.table[normalized]; ok {
		res.Time, res.Resolved = fn(now), true
		return res
	}

	if t, ok := r.clockTime(normalized, now); ok {
		res.Time, res.Resolved = t, true
		return res
	}

	if m := durationPattern.FindStringSubmatch(normalized); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err == nil {
			unit := time.Minute
			if m[2] == "hour" {
				unit = time.Hour
			}
			res.Time, res.Resolved = now.Add(time.Duration(amount)*unit), true
			return res
		}
	}

	return res
}

// clockTime handles "at H[:MM][am|pm]", rolling to tomorrow once the time has passed.
func (r *Resolver) clockTime(s string, now time.Time) (time.Time, bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch m[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, r.location)
	if target.Before(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target, true
}

// ParseTimestamp parses an absolute timestamp in one of the accepted layouts.
// Layouts without an offset are read in the resolver's location.
func (r *Resolver) ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, r.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not understand time %q", s)
}

func phraseTable() map[string]func(now time.Time) time.Time {
	at := func(dayOffset, hour int) func(time.Time) time.Time {
		return func(now time.Time) time.Time {
			d := now.AddDate(0, 0, dayOffset)
			return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, now.Location())
		}
	}
	after := func(d time.Duration) func(time.Time) time.Time {
		return func(now time.Time) time.Time { return now.Add(d) }
	}

	return map[string]func(time.Time) time.Time{
		"now":                after(0),
		"in an hour":         after(time.Hour),
		"in 2 hours":         after(2 * time.Hour),
		"after lunch":        at(0, 13),
		"lunch":              at(0, 12),
		"morning":            at(0, 9),
		"afternoon":          at(0, 14),
		"evening":            at(0, 18),
		"tonight":            at(0, 19),
		"tomorrow":           at(1, 9),
		"tomorrow morning":   at(1, 9),
		"tomorrow afternoon": at(1, 14),
		"next week":          at(7, 9),
	}
}
