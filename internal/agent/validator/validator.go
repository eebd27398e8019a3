package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"devflow/pkg/datemath"
)

// Result is the verdict on one proposed action.
// Args is a copy of the input, possibly rewritten; the caller's map is never touched.
type Result struct {
	OK     bool
	Args   map[string]any
	Reason string
}

type rule func(args map[string]any, now time.Time) (string, bool)

// Validator checks proposed actions before they reach an external service.
type Validator struct {
	resolver *datemath.Resolver
	now      func() time.Time
	rules    map[string]rule
}

// New creates a Validator. now defaults to time.Now.
func New(resolver *datemath.Resolver, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := &Validator{resolver: resolver, now: now}
	v.rules = map[string]rule{
		ToolCreateCalendarEvent: v.createEvent,
		ToolCreateTask:          v.createTask,
	}
	return v
}

// Validate applies the rule registered for name. Names without a rule pass through.
func (v *Validator) Validate(name string, args map[string]any) Result {
	out := cloneArgs(args)
	r, ok := v.rules[name]
	if !ok {
		return Result{OK: true, Args: out}
	}
	if reason, ok := r(out, v.now()); !ok {
		return Result{OK: false, Args: out, Reason: reason}
	}
	return Result{OK: true, Args: out}
}

// Covers lists the tool names that have rules.
func (v *Validator) Covers() []string {
	names := make([]string, 0, len(v.rules))
	for name := range v.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (v *Validator) createEvent(args map[string]any, now time.Time) (string, bool) {
	if stringArg(args, ArgSummary) == "" {
		return ReasonEventTitleRequired, false
	}

	raw := stringArg(args, ArgStartTime)
	if raw == "" {
		return ReasonStartTimeRequired, false
	}
	res := v.resolver.Resolve(raw, now)
	if !res.Resolved {
		t, err := v.resolver.ParseTimestamp(raw)
		if err != nil {
			return fmt.Sprintf(ReasonStartTimeFormat, raw, err), false
		}
		res.Time, res.Resolved = t, true
	}
	args[ArgStartTime] = res.String()

	rawDuration, present := args[ArgDurationHours]
	if !present || rawDuration == nil {
		return ReasonDurationRequired, false
	}
	duration, err := toFloat(rawDuration)
	if err != nil {
		return ReasonDurationNumber, false
	}
	if duration < MinDurationHours || duration > MaxDurationHours {
		return ReasonDurationRange, false
	}
	args[ArgDurationHours] = duration

	return "", true
}

func (v *Validator) createTask(args map[string]any, _ time.Time) (string, bool) {
	if stringArg(args, ArgTitle) == "" {
		return ReasonTaskTitleRequired, false
	}

	priority := strings.ToLower(stringArg(args, ArgPriority))
	if priority == "" {
		priority = DefaultPriority
	}
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		args[ArgPriority] = priority
	default:
		return ReasonPriorityInvalid, false
	}

	if raw, present := args[ArgEstimatedHours]; present && raw != nil {
		hours, err := toFloat(raw)
		if err != nil {
			return ReasonEstimateNumber, false
		}
		args[ArgEstimatedHours] = hours
	}

	return "", true
}

func cloneArgs(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, val := range args {
		out[k] = val
	}
	return out
}

// stringArg returns the trimmed string value of key, or "" when absent or not a string.
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return strings.TrimSpace(s)
}

// toFloat accepts JSON numbers and numeric strings. NaN and infinities are
// rejected: they cannot be stored in a conversation.
func toFloat(v any) (float64, error) {
	f, err := anyFloat(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %v", v)
	}
	return f, nil
}

func anyFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}
