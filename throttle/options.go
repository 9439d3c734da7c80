package throttle

import (
	"log/slog"

	"github.com/adamwoolhether/sitefx/clock"
)

// Option configures a Throttle.
type Option func(*options)

type options struct {
	clock clock.Clock
	logFn func() *slog.Logger
	name  string
}

// WithClock sets the time source and timer scheduler. Defaults to clock.Real().
func WithClock(c clock.Clock) Option {
	return func(opts *options) {
		opts.clock = c
	}
}

// WithLogger sets a lazily resolved logger. A nil-returning logFn disables logging.
func WithLogger(logFn func() *slog.Logger) Option {
	return func(opts *options) {
		opts.logFn = logFn
	}
}

// WithName labels the throttle's log lines.
func WithName(name string) Option {
	return func(opts *options) {
		opts.name = name
	}
}
