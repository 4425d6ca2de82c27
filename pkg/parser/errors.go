package parser

import (
	"errors"
	"fmt"
)

// ErrResourceLimit is wrapped by every LimitError.
var ErrResourceLimit = errors.New("resource limit exceeded")

// Limit names.
const (
	LimitInputBytes   = "input bytes"
	LimitNestingDepth = "nesting depth"
)

// LimitError reports input rejected by a configured resource limit. It is
// the only error Parse returns for Markdown input.
type LimitError struct {
	Limit string
	Value int
	Max   int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements error.
func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: %s %d exceeds %d", ErrResourceLimit, e.Limit, e.Value, e.Max)
}

// Unwrap returns ErrResourceLimit and the cause.
func (e *LimitError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrResourceLimit}
	}
	return []error{ErrResourceLimit, e.Err}
}
