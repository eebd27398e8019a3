package datemath_test

import (
	"testing"
	"time"

	"devflow/pkg/datemath"
)

func newResolver(t *testing.T) *datemath.Resolver {
	t.Helper()
	r, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func TestResolve(t *testing.T) {
	r := newResolver(t)
	nine := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	day := func(d, h, m int) time.Time { return time.Date(2024, 5, d, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name   string
		phrase string
		now    time.Time
		want   time.Time
	}{
		{"now", "now", nine, nine},
		{"in an hour", "in an hour", nine, day(1, 10, 0)},
		{"after lunch", "after lunch", nine, day(1, 13, 0)},
		{"lunch", "Lunch", nine, day(1, 12, 0)},
		{"morning", "morning", nine, day(1, 9, 0)},
		{"afternoon", "afternoon", nine, day(1, 14, 0)},
		{"evening", "evening", nine, day(1, 18, 0)},
		{"tonight", " tonight ", nine, day(1, 19, 0)},
		{"tomorrow", "tomorrow", nine, day(2, 9, 0)},
		{"tomorrow late evening now", "tomorrow", day(1, 23, 30), day(2, 9, 0)},
		{"tomorrow afternoon", "tomorrow afternoon", nine, day(2, 14, 0)},
		{"next week", "next week", nine, day(8, 9, 0)},
		{"at 3pm before", "at 3pm", nine, day(1, 15, 0)},
		{"at 3pm after rolls forward", "at 3pm", day(1, 16, 0), day(2, 15, 0)},
		{"at 12am is midnight", "at 12am", nine, day(2, 0, 0)},
		{"at 12pm is noon", "at 12pm", nine, day(1, 12, 0)},
		{"at 10:30", "meet at 10:30", nine, day(1, 10, 30)},
		{"in 3 hours", "in 3 hours", nine, day(1, 12, 0)},
		{"in 45 minutes", "in 45 minutes", nine, day(1, 9, 45)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.phrase, tt.now)
			if !got.Resolved {
				t.Fatalf("Resolve(%q) not resolved", tt.phrase)
			}
			if !got.Time.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.phrase, got.Time, tt.want)
			}
		})
	}
}

func TestResolve_Total(t *testing.T) {
	r := newResolver(t)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	for _, phrase := range []string{"", "whenever", "at 99pm", "2024-05-03T10:00:00Z", "in many hours", "🙂"} {
		got := r.Resolve(phrase, now)
		if got.Resolved {
			t.Errorf("Resolve(%q) unexpectedly resolved to %v", phrase, got.Time)
		}
		if got.String() != phrase {
			t.Errorf("Resolve(%q).String() = %q, want input unchanged", phrase, got.String())
		}
	}
}

func TestResolution_String(t *testing.T) {
	r := newResolver(t)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	if got := r.Resolve("after lunch", now).String(); got != "2024-05-01T13:00:00Z" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	r := newResolver(t)
	want := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)

	for _, s := range []string{"2024-05-03T10:00:00Z", "2024-05-03T10:00:00", "2024-05-03T10:00", "2024-05-03 10:00"} {
		got, err := r.ParseTimestamp(s)
		if err != nil {
			t.Errorf("ParseTimestamp(%q): %v", s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", s, got, want)
		}
	}

	if _, err := r.ParseTimestamp("sometime soon"); err == nil {
		t.Error("expected error for free text")
	}
}
