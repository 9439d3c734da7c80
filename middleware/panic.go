package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/adamwoolhether/sitefx/dom"
)

// Panics recovers from panics if they occur and logs them.
func Panics(log *slog.Logger) dom.Middleware {
	m := func(handler dom.Handler) dom.Handler {
		h := func(ev dom.Event) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("PANIC", "event", ev.Type, "panic", rec, "trace", string(debug.Stack()))
				}
			}()

			handler(ev)
		}
		return h
	}
	return m
}
