package validation

import (
	"math"
	"regexp"
	"strings"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// OptionalEmail checks the email shape only when a value is present.
// Combine with Required for mandatory email fields.
func OptionalEmail(field, value string, v Violations) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if !emailRegex.MatchString(value) {
		v[field] = "invalid_email"
	}
}

// NonNegative flags negative and non-numeric (NaN) values.
func NonNegative(field string, val float64, v Violations) {
	if math.IsNaN(val) || val < 0 {
		v[field] = "must_be_non_negative"
	}
}
