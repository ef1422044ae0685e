// Package validate holds the validation rules shared by both domains:
// the path-id rule and the calendar date format.
package validate

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateFormat is the only accepted wire format for calendar dates.
const DateFormat = "2006-01-02"

// ID checks that a path identifier is a non-empty string.
func ID(id string) error {
	return validation.Validate(id,
		validation.Required.Error("check that id is non-empty"),
	)
}

// DateRules returns the rule set for a YYYY-MM-DD date field.
func DateRules(field string) []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("check that " + field + " is non-empty"),
		validation.Date(DateFormat).Error("check that " + field + " uses the date format YYYY-MM-DD"),
	}
}

// ParseDate parses a validated YYYY-MM-DD string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateFormat, value)
}
