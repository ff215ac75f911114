package utils

import (
	"time"

	"task-tracker/apperr"
)

// ParseDueDate parses an ISO-8601 date-time string into a UTC instant.
// The input must carry a date, a time of day and an explicit offset or Z
// designator; bare dates are rejected. The parsed instant must lie strictly
// in the future. Both create and update go through here so they enforce the
// identical rule.
func ParseDueDate(value string) (time.Time, error) {
	due, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &apperr.DateFormatError{Input: value}
	}
	if !due.After(time.Now()) {
		return time.Time{}, &apperr.ValidationError{Message: "due date must be in the future"}
	}
	return due.UTC(), nil
}
