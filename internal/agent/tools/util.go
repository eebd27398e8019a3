package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Shared display layouts.
const (
	clockLayout   = "03:04 PM"
	dayLayout     = "Jan 02, 2006"
	dayTimeLayout = "Jan 02, 2006 at 03:04 PM"
)

// decode maps the raw argument map onto a typed input struct.
func decode(input map[string]interface{}, out interface{}) error {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := json.Unmarshal(inputBytes, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// flexFloat accepts a JSON number or a numeric string.
type flexFloat struct {
	Value float64
	Set   bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", s)
	}
	f.Value, f.Set = v, true
	return nil
}

func (f flexFloat) Or(fallback float64) float64 {
	if !f.Set {
		return fallback
	}
	return f.Value
}

// flexBool accepts a JSON bool or "true"/"false".
type flexBool struct {
	Value bool
	Set   bool
}

func (f *flexBool) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("not a boolean: %s", s)
	}
	f.Value, f.Set = v, true
	return nil
}

// formatHours prints whole hours without decimals.
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func shortID(id string) string {
	return truncate(id, 8)
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func schemaString(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func schemaNumber(description string) map[string]interface{} {
	return map[string]interface{}{"type": "number", "description": description}
}

func schemaObject(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
