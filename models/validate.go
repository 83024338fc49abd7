package models

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

func validateDate(value string) error {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return nil
}

// validatePastOrPresentDate enforces the YYYY-MM-DD format and rejects
// future-dated records.
func validatePastOrPresentDate(value string) error {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	if parsed.After(time.Now()) {
		return fmt.Errorf("date cannot be in the future")
	}
	return nil
}

func validateOneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of: %s", field, strings.Join(allowed, ", "))
}
