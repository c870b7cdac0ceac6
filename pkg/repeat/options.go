package repeat

import (
	"context"
	"time"

	"github.com/jzx17/gorepeat/pkg/types"
)

// DefaultPollInterval is the spacing between iterations when neither a poll
// interval nor a per-result delay is configured. Zero means the next
// iteration is scheduled as soon as the previous one returns; the poll
// function itself is the pacing element.
const DefaultPollInterval = 0 * time.Millisecond

// MessageFunc lazily produces the failure message attached to an
// unsuccessful repeat. It may block; if it fails, the engine falls back to
// the statically configured or default message.
type MessageFunc func(ctx context.Context) (string, error)

// Logger interface for logging
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// NopLogger returns a logger that discards all output
func NopLogger() Logger {
	return nopLogger{}
}

type options struct {
	id              string
	timeout         time.Duration
	timeoutSet      bool
	threshold       time.Duration
	pollInterval    time.Duration
	ignoreErrors    []error
	message         string
	messageFunc     MessageFunc
	ignoreLoopError bool
	clock           types.Clock
	manager         *Manager
	logger          Logger
}

func defaultOptions() options {
	return options{
		pollInterval: DefaultPollInterval,
		clock:        types.NewRealClock(),
		manager:      DefaultManager,
		logger:       nopLogger{},
	}
}

// Option is a configuration option for a repeat task
type Option func(*options)

// WithTimeout sets the wall-clock budget measured from task start. Zero runs
// exactly one iteration. Without this option the task loops until it is
// done, aborted or fails.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
		o.timeoutSet = true
	}
}

// WithThreshold requires the condition to hold continuously for d before the
// task finalizes. A single flaky true reading is not accepted as done.
func WithThreshold(d time.Duration) Option {
	return func(o *options) {
		o.threshold = d
	}
}

// WithPollInterval sets the minimum spacing between iterations. A positive
// per-result Delay overrides it for the following iteration only.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		o.pollInterval = d
	}
}

// WithIgnoreErrors lists error kinds that count as an undone iteration
// instead of failing the task. Matching uses errors.Is.
func WithIgnoreErrors(kinds ...error) Option {
	return func(o *options) {
		o.ignoreErrors = append(o.ignoreErrors, kinds...)
	}
}

// WithMessage sets the static failure message carried by timeout and
// single-shot failures.
func WithMessage(message string) Option {
	return func(o *options) {
		o.message = message
	}
}

// WithMessageFunc sets a lazily evaluated failure message. It takes
// precedence over WithMessage when it succeeds.
func WithMessageFunc(fn MessageFunc) Option {
	return func(o *options) {
		o.messageFunc = fn
	}
}

// WithID sets the task identity. A random identity is generated otherwise.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithIgnoreLoopError makes a single-shot miss settle with the zero value
// instead of an UnsuccessfulError.
func WithIgnoreLoopError() Option {
	return func(o *options) {
		o.ignoreLoopError = true
	}
}

// WithClock sets the clock for time operations
func WithClock(clock types.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithManager registers the task with the given manager instead of
// DefaultManager.
func WithManager(m *Manager) Option {
	return func(o *options) {
		o.manager = m
	}
}

// WithLogger sets the logger for task lifecycle events
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
