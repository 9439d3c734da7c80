package throttle

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/adamwoolhether/sitefx/clock"
	"github.com/adamwoolhether/sitefx/errs"
)

var (
	ErrInvalidInterval = errors.New("interval must not be negative")
	ErrNilCallback     = errors.New("callback must not be nil")
)

// Throttle limits fn to one execution per interval, deferring the most
// recent call that arrives inside the blocked window.
type Throttle[T any] struct {
	fn       func(T)
	interval time.Duration
	clock    clock.Clock
	logFn    func() *slog.Logger
	name     string

	mu      sync.Mutex
	last    time.Time
	hasRun  bool
	pending *call[T]

	runMu sync.Mutex
}

// call is a deferred execution. It is current only while it is the
// throttle's pending call; a superseded call that still fires is ignored.
type call[T any] struct {
	args  T
	timer clock.Timer
}

// New returns a Throttle around fn. interval must not be negative.
func New[T any](fn func(T), interval time.Duration, optFns ...Option) (*Throttle[T], error) {
	if fn == nil {
		return nil, errs.New(errs.InvalidArgument, ErrNilCallback)
	}
	if interval < 0 {
		return nil, errs.New(errs.InvalidArgument, fmt.Errorf("interval[%s]: %w", interval, ErrInvalidInterval))
	}

	var opts options
	for _, opt := range optFns {
		opt(&opts)
	}
	if opts.clock == nil {
		opts.clock = clock.Real()
	}
	if opts.logFn == nil {
		opts.logFn = func() *slog.Logger { return nil }
	}

	t := &Throttle[T]{
		fn:       fn,
		interval: interval,
		clock:    opts.clock,
		logFn:    opts.logFn,
		name:     opts.name,
	}

	return t, nil
}

// Wrap returns the rate-limited form of fn with the same signature.
func Wrap[T any](fn func(T), interval time.Duration, opts ...Option) (func(T), error) {
	t, err := New(fn, interval, opts...)
	if err != nil {
		return nil, err
	}

	return t.Call, nil
}

// Func is Wrap for callbacks without arguments.
func Func(fn func(), interval time.Duration, opts ...Option) (func(), error) {
	if fn == nil {
		return nil, errs.New(errs.InvalidArgument, ErrNilCallback)
	}

	t, err := New(func(struct{}) { fn() }, interval, opts...)
	if err != nil {
		return nil, err
	}

	return func() { t.Call(struct{}{}) }, nil
}

// Call requests an execution of the callback with args.
//
// If the callback has never run, or at least interval has elapsed since it
// last ran, it runs now on the calling goroutine and any deferred call is
// cancelled. Otherwise the deferred call is (re)scheduled with args for the
// moment the window closes.
//
// A call that would run immediately while an execution is in progress,
// such as the callback invoking its own wrapper, is deferred until that
// execution returns.
func (t *Throttle[T]) Call(args T) {
	t.mu.Lock()

	now := t.clock.Now()
	elapsed := now.Sub(t.last)

	if !t.hasRun || elapsed >= t.interval {
		if t.runMu.TryLock() {
			t.cancelPendingLocked()
			t.last = now
			t.hasRun = true
			t.mu.Unlock()

			defer t.runMu.Unlock()
			t.fn(args)
			return
		}

		t.deferLocked(args, 0)
		t.mu.Unlock()

		t.logDeferred(0, "busy")
		return
	}

	wait := t.interval - elapsed
	t.deferLocked(args, wait)
	t.mu.Unlock()

	t.logDeferred(wait, "window")
}

// Pending reports whether a deferred call is scheduled.
func (t *Throttle[T]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.pending != nil
}

// LastRun returns the time of the most recent execution, and false if the
// callback has not run yet.
func (t *Throttle[T]) LastRun() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.last, t.hasRun
}

// Interval returns the configured window.
func (t *Throttle[T]) Interval() time.Duration {
	return t.interval
}

// fire runs a deferred call if it is still the pending one. The window
// restarts when the callback returns.
func (t *Throttle[T]) fire(c *call[T]) {
	t.mu.Lock()
	if t.pending != c {
		t.mu.Unlock()
		return
	}
	t.pending = nil
	t.last = t.clock.Now()
	t.hasRun = true
	t.mu.Unlock()

	t.runMu.Lock()
	defer t.runMu.Unlock()
	defer t.markRun()

	t.fn(c.args)
}

func (t *Throttle[T]) markRun() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last = t.clock.Now()
}

func (t *Throttle[T]) deferLocked(args T, wait time.Duration) {
	t.cancelPendingLocked()

	c := &call[T]{args: args}
	c.timer = t.clock.AfterFunc(wait, func() { t.fire(c) })
	t.pending = c
}

func (t *Throttle[T]) logDeferred(wait time.Duration, reason string) {
	if logger := t.logFn(); logger != nil {
		logger.Debug("throttle deferred call", "name", t.name, "reason", reason, "wait", wait.String(), "interval", t.interval.String())
	}
}

func (t *Throttle[T]) cancelPendingLocked() {
	if t.pending == nil {
		return
	}

	t.pending.timer.Stop()
	t.pending = nil
}
