package calendar

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Day lists the events of the day named by date: "today", "tomorrow",
	// a weekday, "in N days" or YYYY-MM-DD. Empty means today.
	Day(ctx context.Context, date string) (Day, error)
}
