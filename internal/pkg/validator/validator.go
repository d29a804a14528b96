package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToMap returns the field -> message mapping. When a field failed more than
// one rule the first message wins.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		if _, exists := result[err.Field]; exists {
			continue
		}
		result[err.Field] = err.Message
	}
	return result
}

// Has reports whether field failed validation.
func (v ValidationErrors) Has(field string) bool {
	for _, err := range v {
		if err.Field == field {
			return true
		}
	}
	return false
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// local@domain.tld: no whitespace, exactly one "@", and a dot after it.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

const DateLayout = "2006-01-02"

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
