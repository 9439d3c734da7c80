package middleware

import (
	"log/slog"
	"time"

	"github.com/adamwoolhether/sitefx/dom"
)

// Logger logs each dispatch at debug level.
func Logger(log *slog.Logger) dom.Middleware {
	m := func(handler dom.Handler) dom.Handler {
		h := func(ev dom.Event) {
			start := time.Now()

			handler(ev)

			log.Debug("event handled", "event", ev.Type, "target", targetID(ev), "since", time.Since(start).String())
		}

		return h
	}

	return m
}

func targetID(ev dom.Event) string {
	if ev.Target == nil {
		return ""
	}
	return ev.Target.ID()
}
