package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-day format accepted and produced by tools.
const DateLayout = "2006-01-02"

// ErrUnknownDay is returned for a phrase that names no day.
var ErrUnknownDay = errors.New("unrecognized day")

var offsetPattern = regexp.MustCompile(`^in (\d+) (day|week|month)s?$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parser resolves day phrases ("tomorrow", "next friday", "in 2 weeks",
// "2024-06-15") to midnight of that day in a fixed location. Unlike
// Resolver it works at day granularity and rejects what it cannot read.
type Parser struct {
	location *time.Location
}

// NewParser creates a Parser for the given IANA timezone.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse returns midnight of the day named by phrase, relative to now.
// A bare weekday or "next <weekday>" is the first such day after today.
func (p *Parser) Parse(phrase string, now time.Time) (time.Time, error) {
	today := p.midnight(now)
	s := strings.Join(strings.Fields(strings.ToLower(phrase)), " ")

	switch s {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if m := offsetPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDay, phrase)
		}
		switch m[2] {
		case "day":
			return today.AddDate(0, 0, n), nil
		case "week":
			return today.AddDate(0, 0, 7*n), nil
		default:
			return today.AddDate(0, n, 0), nil
		}
	}

	if wd, ok := weekdays[strings.TrimPrefix(s, "next ")]; ok {
		ahead := int(wd - today.Weekday())
		if ahead <= 0 {
			ahead += 7
		}
		return today.AddDate(0, 0, ahead), nil
	}

	if t, err := time.ParseInLocation(DateLayout, s, p.location); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDay, phrase)
}

func (p *Parser) midnight(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
