package sitefx

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/sitefx/dom"
	"github.com/adamwoolhether/sitefx/effects"
)

// Option defines optional settings for Init.
type Option func(*options)

type options struct {
	config     effects.Config
	logger     *slog.Logger
	tracer     trace.Tracer
	middleware []dom.Middleware
	onScroll   dom.Handler
}

// WithConfig replaces the default effect configuration.
func WithConfig(cfg effects.Config) Option {
	return func(opts *options) {
		opts.config = cfg
	}
}

// WithLogger sets the logger, overriding the host's.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithTracer sets the tracer used for the init span and handler spans.
// Defaults to the global otel tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(opts *options) {
		opts.tracer = tracer
	}
}

// WithMiddleware appends handler middleware after the built-in stack.
func WithMiddleware(mw ...dom.Middleware) Option {
	return func(opts *options) {
		opts.middleware = append(opts.middleware, mw...)
	}
}

// WithScrollHandler sets the throttled scroll hook.
func WithScrollHandler(h dom.Handler) Option {
	return func(opts *options) {
		opts.onScroll = h
	}
}
