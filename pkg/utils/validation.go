package utils

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseDateOfBirth accepts a browser date field (YYYY-MM-DD) or a full
// RFC 3339 timestamp and rejects dates in the future.
func ParseDateOfBirth(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidInput
	}

	dob, err := time.Parse("2006-01-02", value)
	if err != nil {
		dob, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, ErrInvalidInput
		}
	}

	if dob.After(time.Now()) {
		return time.Time{}, ErrInvalidInput
	}
	return dob, nil
}

// ParseTimestamp parses a datetime-local form value, falling back to
// RFC 3339 and plain date forms.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidInput
	}

	for _, layout := range []string{"2006-01-02T15:04", time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, ErrInvalidInput
}
