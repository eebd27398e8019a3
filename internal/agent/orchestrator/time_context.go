package orchestrator

import (
	"fmt"
	"strings"
	"time"
)

// buildTimeContext describes today, tomorrow and the Monday-Sunday week of now.
func buildTimeContext(now time.Time) string {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(isoDateLayout),
		now.Weekday().String(),
		tomorrow.Format(isoDateLayout),
		weekStart.Format(isoDateLayout),
		weekEnd.Format(isoDateLayout),
		weekStart.Format(isoDateLayout),
		weekEnd.Format(isoDateLayout),
		tomorrow.Format(isoDateLayout),
	)
}

// buildSystemPrompt renders the system instruction for now and the catalog names.
func buildSystemPrompt(now time.Time, actions []string) string {
	return fmt.Sprintf(
		SystemPromptTemplate,
		now.Format(currentTimeLayout),
		buildTimeContext(now),
		strings.Join(actions, ", "),
	)
}
