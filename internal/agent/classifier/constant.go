package classifier

// WarningMatchThreshold is the number of distinct warning keywords the
// detailed cascade needs before tagging a turn as a warning.
const WarningMatchThreshold = 2

// Detailed cascade keyword sets, matched case-insensitively as substrings.
var (
	ErrorKeywords = []string{
		"error", "failed", "could not", "couldn't", "unable to",
		"not found", "invalid", "incorrect", "❌", "cannot",
		"exception", "crashed", "broken",
	}

	WarningKeywords = []string{
		"blocked", "overdue", "high priority", "urgent", "pending",
		"attention", "⚠️", "limited", "quota", "exceeded",
		"missing", "incomplete",
	}

	SuccessKeywords = []string{
		"created", "scheduled", "completed", "updated", "deleted",
		"✅", "successfully", "done", "finished", "saved",
		"confirmed", "added",
	}
)

// Simple variant keyword sets, used at the serving boundary.
var (
	SimpleErrorKeywords   = []string{"error", "failed", "unable", "exception"}
	SimpleWarningKeywords = []string{"warning", "caution", "be careful"}
	SimpleSuccessKeywords = []string{"done", "created", "added", "scheduled", "success", "completed"}
)
