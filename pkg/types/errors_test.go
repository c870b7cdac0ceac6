package types

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsuccessfulError(t *testing.T) {
	err := &UnsuccessfulError{
		TaskID:  "open-dialog",
		Message: "dialog never appeared",
		Elapsed: 5 * time.Second,
	}

	assert.True(t, errors.Is(err, ErrUnsuccessful))
	assert.True(t, IsUnsuccessful(err))
	assert.Contains(t, err.Error(), "open-dialog")
	assert.Contains(t, err.Error(), "dialog never appeared")
	assert.Contains(t, err.Error(), "5s")
}

func TestUnsuccessfulError_Wrapped(t *testing.T) {
	err := fmt.Errorf("waiting for menu: %w", &UnsuccessfulError{TaskID: "menu", Message: "gone"})
	assert.True(t, IsUnsuccessful(err))
}

func TestIsUnsuccessful_OtherErrors(t *testing.T) {
	assert.False(t, IsUnsuccessful(nil))
	assert.False(t, IsUnsuccessful(ErrExited))
	assert.False(t, IsUnsuccessful(errors.New("boom")))
}

func TestRepeatError(t *testing.T) {
	cause := errors.New("stale element")
	err := NewRepeatError("find-input", "poll function failed", cause)

	require.NotNil(t, err)
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "find-input")
	assert.Contains(t, err.Error(), "poll function failed")
	assert.Contains(t, err.Error(), "stale element")
}

func TestRepeatError_NoCause(t *testing.T) {
	err := NewRepeatError("t1", "something went wrong", nil)
	assert.Contains(t, err.Error(), "something went wrong")
	assert.Nil(t, err.Unwrap())
}

func TestMatchesAny(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	assert.True(t, MatchesAny(errA, []error{errB, errA}))
	assert.True(t, MatchesAny(fmt.Errorf("wrapped: %w", errA), []error{errA}))
	assert.False(t, MatchesAny(errA, []error{errB}))
	assert.False(t, MatchesAny(errA, nil))
}
