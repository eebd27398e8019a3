package classifier

import (
	"strings"

	"devflow/internal/model"
)

// Classify runs the detailed cascade. Rules are checked in order and the
// first match wins:
//  1. any error keyword
//  2. any invalid action record
//  3. at least WarningMatchThreshold distinct warning keywords
//  4. any success keyword
//  5. any valid action record
//  6. info
func Classify(text string, records []model.ActionRecord) model.Classification {
	lower := strings.ToLower(text)

	if countMatches(lower, ErrorKeywords) > 0 {
		return model.ClassificationError
	}
	if hasStatus(records, model.ActionInvalid) {
		return model.ClassificationError
	}
	if countMatches(lower, WarningKeywords) >= WarningMatchThreshold {
		return model.ClassificationWarning
	}
	if countMatches(lower, SuccessKeywords) > 0 {
		return model.ClassificationSuccess
	}
	if hasStatus(records, model.ActionValid) {
		return model.ClassificationSuccess
	}
	return model.ClassificationInfo
}

// ClassifySimple is the single-pass variant: error, warning, then success
// keywords, with no threshold and no action history. It does not have to
// agree with Classify on the same text.
func ClassifySimple(text string) model.Classification {
	lower := strings.ToLower(text)

	switch {
	case countMatches(lower, SimpleErrorKeywords) > 0:
		return model.ClassificationError
	case countMatches(lower, SimpleWarningKeywords) > 0:
		return model.ClassificationWarning
	case countMatches(lower, SimpleSuccessKeywords) > 0:
		return model.ClassificationSuccess
	default:
		return model.ClassificationInfo
	}
}

// countMatches counts distinct keywords present in lower.
func countMatches(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func hasStatus(records []model.ActionRecord, status model.ActionStatus) bool {
	for _, r := range records {
		if r.Status == status {
			return true
		}
	}
	return false
}
