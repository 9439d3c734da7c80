// Package middleware provides dom.Middleware for event handlers: logging,
// panic recovery and tracing.
//
// Handlers run on the host's event loop. A panic escaping a handler in the
// js/wasm host terminates the Go program, so Panics should sit outermost:
//
//	h := dom.Wrap([]dom.Middleware{
//		middleware.Panics(log),
//		middleware.Trace(tracer),
//		middleware.Logger(log),
//	}, handler)
package middleware
