// models/validate.go - Structural validation errors
package models

import "fmt"

// ValidationError reports a payload that failed structural validation:
// a required field is missing or an enum field holds a value outside its
// closed set. It is always raised before any mutation is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func required(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

func invalidEnum(field, value string) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf("unrecognized value %q", value)}
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
