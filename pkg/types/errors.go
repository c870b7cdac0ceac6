// Package types defines error types
package types

import (
	"errors"
	"fmt"
	"time"
)

// Predefined errors
var (
	// ErrExited signals that a repeat task was settled from the outside,
	// typically by Manager.AbortAll during teardown. It is not produced by
	// normal loop completion.
	ErrExited = errors.New("repeat task exited")

	// ErrUnsuccessful matches *UnsuccessfulError via errors.Is
	ErrUnsuccessful = errors.New("repeat was not successful")
)

// RepeatError represents a generic repeat task failure
type RepeatError struct {
	// TaskID identifies the task that failed
	TaskID string

	// Message is the human-readable failure description
	Message string

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface
func (e *RepeatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("repeat %s: %s: %v", e.TaskID, e.Message, e.Cause)
	}
	return fmt.Sprintf("repeat %s: %s", e.TaskID, e.Message)
}

// Unwrap returns the underlying error
func (e *RepeatError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is a specific error
func (e *RepeatError) Is(target error) bool {
	return errors.Is(e.Cause, target)
}

// NewRepeatError creates a new repeat error
func NewRepeatError(taskID, message string, cause error) *RepeatError {
	return &RepeatError{
		TaskID:  taskID,
		Message: message,
		Cause:   cause,
	}
}

// UnsuccessfulError reports that a repeat task exhausted its timeout budget
// or missed its single iteration without the condition being met
type UnsuccessfulError struct {
	// TaskID identifies the task that failed
	TaskID string

	// Message is the resolved failure message supplied by the caller
	Message string

	// Elapsed is the wall-clock time the task ran before failing
	Elapsed time.Duration
}

// Error implements the error interface
func (e *UnsuccessfulError) Error() string {
	return fmt.Sprintf("repeat %s was not successful after %v: %s", e.TaskID, e.Elapsed, e.Message)
}

// Is checks if the error is a specific error
func (e *UnsuccessfulError) Is(target error) bool {
	return target == ErrUnsuccessful
}

// IsUnsuccessful checks if an error is a timeout or single-shot failure
func IsUnsuccessful(err error) bool {
	return errors.Is(err, ErrUnsuccessful)
}

// MatchesAny reports whether err matches any of the given kinds via errors.Is
func MatchesAny(err error, kinds []error) bool {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
