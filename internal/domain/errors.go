package domain

import (
	"fmt"
	"strings"
)

// ValidationError is returned when one or more entity or request constraints are violated.
type ValidationError struct {
	violations []string
}

// NewValidationError creates a validation error from one or more violation messages.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{violations: violations}
}

// Error joins the violation messages with ". ".
func (e *ValidationError) Error() string {
	return strings.Join(e.violations, ". ")
}

func (e *ValidationError) Violations() []string {
	out := make([]string, len(e.violations))
	copy(out, e.violations)
	return out
}

// UnknownSortKeyError is returned when a listing is requested with a sort key outside
// the supported set.
type UnknownSortKeyError struct {
	Key string
}

func (e *UnknownSortKeyError) Error() string {
	return fmt.Sprintf("Unknown sort by value %q", e.Key)
}
