package datemath

import "time"

// Resolution is the outcome of resolving a natural-time phrase.
// When Resolved is false, Time is zero and Input should be passed on as-is.
type Resolution struct {
	Input    string
	Time     time.Time
	Resolved bool
}

// String returns the RFC3339 timestamp, or the untouched input when nothing matched.
func (r Resolution) String() string {
	if !r.Resolved {
		return r.Input
	}
	return r.Time.Format(time.RFC3339)
}
