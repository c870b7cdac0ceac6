package repeat

import (
	"time"

	"github.com/jzx17/gorepeat/pkg/types"
)

// Threshold is a stability timer: it tracks whether a condition has remained
// continuously true for a configured duration. The engine re-arms it on
// every false-to-true transition and finalizes only once the window has
// fully elapsed without an intervening reset.
type Threshold struct {
	interval   time.Duration
	start      time.Time
	resetCount int
	clock      types.Clock
}

// NewThreshold creates a stability timer for the given window. A nil clock
// defaults to the real clock.
func NewThreshold(interval time.Duration, clock types.Clock) *Threshold {
	if clock == nil {
		clock = types.NewRealClock()
	}
	return &Threshold{
		interval: interval,
		clock:    clock,
	}
}

// Reset arms the stability window starting now and counts the re-arm.
func (t *Threshold) Reset() {
	t.start = t.clock.Now()
	t.resetCount++
}

// HasFinished reports whether the window has fully elapsed since the last
// Reset. It is false while the timer has never been armed.
func (t *Threshold) HasFinished() bool {
	if t.start.IsZero() {
		return false
	}
	return t.clock.Since(t.start) >= t.interval
}

// ResetCount reports how many times the window was armed. Diagnostic only.
func (t *Threshold) ResetCount() int {
	return t.resetCount
}

// Interval returns the configured stability window
func (t *Threshold) Interval() time.Duration {
	return t.interval
}
