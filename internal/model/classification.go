package model

// Classification tags the nature of a finished turn.
type Classification string

const (
	ClassificationSuccess Classification = "success"
	ClassificationInfo    Classification = "info"
	ClassificationWarning Classification = "warning"
	ClassificationError   Classification = "error"
)
