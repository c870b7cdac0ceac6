// Package repeat provides the polling engine implementation
package repeat

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jzx17/gorepeat/pkg/types"
)

// DefaultUnsuccessfulMessage is used when no message option is configured
const DefaultUnsuccessfulMessage = "repeated check was not successful"

// Repeat owns one polling task: it schedules iterations of a poll function,
// interprets their results and applies threshold, timeout and delay policy.
// All iterations of a task run strictly sequentially on a single goroutine;
// independent tasks may be in flight concurrently.
type Repeat[T any] struct {
	fn   PollFunc[T]
	opts options

	threshold *Threshold

	startOnce  sync.Once
	settleOnce sync.Once
	isSettled  atomic.Bool
	done       chan struct{}
	value      T
	err        error
}

// New creates a repeat task without starting it
func New[T any](fn PollFunc[T], opts ...Option) *Repeat[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	r := &Repeat[T]{
		fn:   fn,
		opts: o,
		done: make(chan struct{}),
	}
	if o.threshold > 0 {
		r.threshold = NewThreshold(o.threshold, o.clock)
	}
	return r
}

// Do constructs a repeat task from an explicit poll function and runs it to
// settlement. It is the entry point collaborators should use.
func Do[T any](ctx context.Context, fn PollFunc[T], opts ...Option) (T, error) {
	return New(fn, opts...).Execute(ctx)
}

// Until polls an implicit condition until it reads true
func Until(ctx context.Context, cond Condition, opts ...Option) error {
	_, err := New(cond.Poll, opts...).Execute(ctx)
	return err
}

// ID returns the task identity
func (r *Repeat[T]) ID() string {
	return r.opts.id
}

// Done returns a channel that is closed once the task has settled
func (r *Repeat[T]) Done() <-chan struct{} {
	return r.done
}

// Execute starts the loop and blocks until the task settles, returning the
// final value or the failure. It is idempotent: further calls join the same
// settlement and observe the same outcome.
func (r *Repeat[T]) Execute(ctx context.Context) (T, error) {
	r.startOnce.Do(func() {
		r.opts.manager.Add(r)
		go r.run(ctx)
	})
	<-r.done
	return r.value, r.err
}

// Abort forcibly settles the task with the given error. A nil error means
// teardown and maps to types.ErrExited. Abort always wins a race with a
// concurrently scheduled iteration: the pending wake-up becomes a no-op.
func (r *Repeat[T]) Abort(err error) {
	if err == nil {
		err = types.ErrExited
	}
	var zero T
	r.settle(zero, err)
}

// AbortWithValue forcibly settles the task successfully with v
func (r *Repeat[T]) AbortWithValue(v T) {
	r.settle(v, nil)
}

func (r *Repeat[T]) settled() bool {
	return r.isSettled.Load()
}

// settle records the outcome and runs cleanup exactly once. The settled
// flag is raised before deregistration so that a racing Manager.Add cannot
// re-insert the task.
func (r *Repeat[T]) settle(v T, err error) {
	r.settleOnce.Do(func() {
		r.value = v
		r.err = err
		r.isSettled.Store(true)
		r.cleanup()
		close(r.done)
	})
}

// cleanup deregisters the task from its manager. Any pending iteration
// timer is released by the loop goroutine observing the settlement.
func (r *Repeat[T]) cleanup() {
	r.opts.manager.Remove(r.opts.id)
	r.opts.logger.Debugf("repeat %s: settled", r.opts.id)
}

func (r *Repeat[T]) run(ctx context.Context) {
	var zero T
	start := r.opts.clock.Now()
	singleShot := r.opts.timeoutSet && r.opts.timeout == 0
	bounded := r.opts.timeoutSet && r.opts.timeout > 0

	// holding is true while the condition read true on the previous
	// iteration, i.e. the stability window is armed and uninterrupted.
	holding := false

	r.opts.logger.Debugf("repeat %s: starting (timeout=%v threshold=%v)",
		r.opts.id, r.opts.timeout, r.opts.threshold)

	for {
		if r.settled() {
			return
		}
		if ctx.Err() != nil {
			r.settle(zero, ctx.Err())
			return
		}
		if bounded && r.opts.clock.Since(start) >= r.opts.timeout {
			r.settle(zero, r.unsuccessful(ctx, start))
			return
		}

		res, err := r.fn(ctx)
		if err != nil {
			if !types.MatchesAny(err, r.opts.ignoreErrors) {
				r.settle(zero, types.NewRepeatError(r.opts.id, "poll function failed", err))
				return
			}
			r.opts.logger.Debugf("repeat %s: ignoring error: %v", r.opts.id, err)
			res = Result[T]{Status: Undone}
		}

		switch res.Status {
		case Done:
			if r.threshold == nil {
				r.settle(res.Value, nil)
				return
			}
			if !holding {
				r.threshold.Reset()
				holding = true
			}
			if r.threshold.HasFinished() {
				r.settle(res.Value, nil)
				return
			}
		case Undone:
			holding = false
		}

		if singleShot {
			if r.opts.ignoreLoopError {
				r.settle(zero, nil)
			} else {
				r.settle(zero, r.unsuccessful(ctx, start))
			}
			return
		}

		wait := r.opts.pollInterval
		if res.Delay > 0 {
			wait = res.Delay
		}
		if bounded {
			// Never sleep past the timeout budget; the loop boundary
			// check fires as soon as the budget is exhausted.
			if remaining := r.opts.timeout - r.opts.clock.Since(start); wait > remaining {
				wait = remaining
			}
		}
		if wait <= 0 {
			continue
		}
		timer := r.opts.clock.NewTimer(wait)
		select {
		case <-timer.C():
		case <-r.done:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			r.settle(zero, ctx.Err())
			return
		}
	}
}

// unsuccessful builds the timeout / single-shot failure, resolving the
// lazily computed message when one is configured.
func (r *Repeat[T]) unsuccessful(ctx context.Context, start time.Time) error {
	msg := r.opts.message
	if r.opts.messageFunc != nil {
		if s, err := r.opts.messageFunc(ctx); err == nil {
			msg = s
		} else {
			r.opts.logger.Warnf("repeat %s: message func failed: %v", r.opts.id, err)
		}
	}
	if msg == "" {
		msg = DefaultUnsuccessfulMessage
	}
	return &types.UnsuccessfulError{
		TaskID:  r.opts.id,
		Message: msg,
		Elapsed: r.opts.clock.Since(start),
	}
}
