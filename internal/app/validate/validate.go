// Package validate evaluates declarative per-entity validation rules.
// Each entity declares its rules as a table of {field, constraint, message};
// Check runs them all so a caller gets every failing field at once.
package validate

import (
	"time"
	"unicode/utf8"

	"github.com/FBenja/fleet-api/internal/app/apperr"
)

// Rule is one constraint on one input field.
type Rule struct {
	Field   string
	Message string
	OK      func() bool
}

// Check evaluates all rules and returns a field error per failed rule,
// or nil when everything passes.
func Check(rules ...Rule) []apperr.FieldError {
	var out []apperr.FieldError
	for _, r := range rules {
		if !r.OK() {
			out = append(out, apperr.FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return out
}

// LengthBetween reports whether s has min..max runes inclusive.
func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// DateLayout is the calendar-date wire format for date-only fields.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in DateLayout.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	return t, err == nil
}
