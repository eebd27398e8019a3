package gtasks

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const notesSeparator = "\n\n---\n"

var (
	priorityLine = regexp.MustCompile(`(?mi)^priority:\s*(\w+)\s*$`)
	estimateLine = regexp.MustCompile(`(?mi)^estimated:\s*([0-9]*\.?[0-9]+)\s*h\s*$`)
)

// Metadata is the structured trailer DevFlow writes into task notes.
type Metadata struct {
	Priority       string
	EstimatedHours float64
	HasEstimate    bool
}

// FormatNotes renders a description followed by the metadata trailer.
func FormatNotes(description string, m Metadata) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(description))
	b.WriteString(notesSeparator)
	fmt.Fprintf(&b, "Priority: %s", m.Priority)
	if m.HasEstimate {
		fmt.Fprintf(&b, "\nEstimated: %sh", strconv.FormatFloat(m.EstimatedHours, 'f', -1, 64))
	}
	return b.String()
}

// ParseNotes extracts the metadata trailer. Missing fields stay zero.
func ParseNotes(notes string) Metadata {
	var m Metadata
	if match := priorityLine.FindStringSubmatch(notes); match != nil {
		m.Priority = strings.ToLower(match[1])
	}
	if match := estimateLine.FindStringSubmatch(notes); match != nil {
		if h, err := strconv.ParseFloat(match[1], 64); err == nil {
			m.EstimatedHours, m.HasEstimate = h, true
		}
	}
	return m
}

// Description returns the notes without the metadata trailer.
func Description(notes string) string {
	if i := strings.Index(notes, notesSeparator); i >= 0 {
		return strings.TrimSpace(notes[:i])
	}
	return strings.TrimSpace(notes)
}
