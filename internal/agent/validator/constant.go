package validator

// Catalog entries that carry argument rules.
const (
	ToolCreateCalendarEvent = "create_calendar_event"
	ToolCreateTask          = "create_task"
)

// Argument keys.
const (
	ArgSummary        = "summary"
	ArgStartTime      = "start_time"
	ArgDurationHours  = "duration_hours"
	ArgTitle          = "title"
	ArgPriority       = "priority"
	ArgEstimatedHours = "estimated_hours"
)

// Event duration bounds in hours, both inclusive.
const (
	MinDurationHours = 0.25
	MaxDurationHours = 12.0
)

// Task priorities.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"

	DefaultPriority = PriorityMedium
)

// Rejection reasons.
const (
	ReasonEventTitleRequired = "Event title is required"
	ReasonStartTimeRequired  = "Start time is required"
	ReasonStartTimeFormat    = "Could not parse time '%s': %v"
	ReasonDurationRequired   = "Duration is required"
	ReasonDurationNumber     = "Duration must be a valid number"
	ReasonDurationRange      = "Duration must be between 15 minutes and 12 hours"
	ReasonTaskTitleRequired  = "Task title is required"
	ReasonPriorityInvalid    = "Priority must be low, medium, high, or critical"
	ReasonEstimateNumber     = "Estimated hours must be a valid number"
)
