package agent

import (
	"errors"
	"fmt"
)

var ErrDuplicateTool = errors.New("tool already registered")

// UncoveredRuleError reports a validation rule whose tool is not in the catalog.
type UncoveredRuleError struct {
	Tool string
}

func (e *UncoveredRuleError) Error() string {
	return fmt.Sprintf("validation rule for %q has no registered tool", e.Tool)
}
