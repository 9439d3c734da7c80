package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/sitefx/dom"
)

// Trace wraps each dispatch in a span named "sitefx.<event>". A nil tracer
// uses a no-op tracer.
func Trace(tracer trace.Tracer) dom.Middleware {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("no-op tracer")
	}

	m := func(handler dom.Handler) dom.Handler {
		h := func(ev dom.Event) {
			_, span := tracer.Start(context.Background(), "sitefx."+ev.Type)
			defer span.End()

			span.SetAttributes(
				attribute.String("event", ev.Type),
				attribute.String("target", targetID(ev)),
			)

			handler(ev)
		}

		return h
	}

	return m
}
