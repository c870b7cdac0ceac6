package repeat

import (
	"context"
	"time"
)

// Status classifies the outcome of a single poll invocation.
type Status int

const (
	// Undone means the condition has not been met yet and polling continues
	Undone Status = iota

	// Done means the condition has been met
	Done
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Undone:
		return "Undone"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Result is the explicit, tagged outcome of one poll invocation.
type Result[T any] struct {
	// Value carries the final value once Status is Done
	Value T

	// Status signals whether the task may finalize
	Status Status

	// Delay, when positive, overrides the configured poll interval for
	// scheduling the next iteration
	Delay time.Duration
}

// DoneResult signals completion with the given value
func DoneResult[T any](v T) Result[T] {
	return Result[T]{Value: v, Status: Done}
}

// UndoneResult signals that polling should continue
func UndoneResult[T any]() Result[T] {
	return Result[T]{Status: Undone}
}

// UndoneAfter signals that polling should continue after waiting at least d
func UndoneAfter[T any](d time.Duration) Result[T] {
	return Result[T]{Status: Undone, Delay: d}
}

// PollFunc is the caller-supplied check driven by a Repeat task. It is
// invoked strictly sequentially: the next invocation starts only after the
// previous one has returned.
type PollFunc[T any] func(ctx context.Context) (Result[T], error)

// Condition is the implicit form of a poll function: a true reading means
// the condition is met. Use a PollFunc for explicit control over value,
// status and per-iteration delay.
type Condition func(ctx context.Context) (bool, error)

// Poll adapts a Condition to the explicit result shape
func (c Condition) Poll(ctx context.Context) (Result[bool], error) {
	ok, err := c(ctx)
	if err != nil {
		return Result[bool]{}, err
	}
	if ok {
		return DoneResult(true), nil
	}
	return UndoneResult[bool](), nil
}
