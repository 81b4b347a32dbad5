package models

import (
	"errors"
	"fmt"
)

// ValidationError rejects bad entry or profile data before it reaches the
// log. The log is never touched when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrIncompleteProfile is returned by the goal math (and anything that feeds
// the profile into an estimation prompt) when height, weight, age or gender
// is missing.
var ErrIncompleteProfile = errors.New("profile incomplete: age, gender, weight and height are required")

// EstimationError wraps any failure of the external reasoning call: network
// errors, timeouts, non-200 responses, or model output we can't parse.
type EstimationError struct {
	Kind string // "meal" | "workout" | "coach"
	Err  error
}

func (e *EstimationError) Error() string {
	return fmt.Sprintf("%s estimation failed: %v", e.Kind, e.Err)
}

func (e *EstimationError) Unwrap() error { return e.Err }
