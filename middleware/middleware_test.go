package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/sitefx/dom"
	"github.com/adamwoolhether/sitefx/dom/domtest"
	"github.com/adamwoolhether/sitefx/middleware"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	btn := domtest.NewElement("button")
	btn.SetID("cta")

	called := false
	handler := middleware.Logger(log)(func(dom.Event) { called = true })
	handler(dom.Event{Type: "click", Target: btn})

	if !called {
		t.Fatal("handler was not called")
	}

	output := buf.String()
	for _, want := range []string{"event handled", "event=click", "target=cta", "since="} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in log output: %s", want, output)
		}
	}
}

func TestLogger_NoTarget(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	middleware.Logger(log)(func(dom.Event) {})(dom.Event{Type: "scroll"})

	if !strings.Contains(buf.String(), "event=scroll") {
		t.Fatalf("expected event in log output: %s", buf.String())
	}
}

func TestPanics_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	called := false
	middleware.Panics(log)(func(dom.Event) { called = true })(dom.Event{Type: "click"})

	if !called {
		t.Fatal("handler was not called")
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected log output: %s", buf.String())
	}
}

func TestPanics_Recovery(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	handler := middleware.Panics(log)(func(dom.Event) {
		panic("something broke")
	})
	handler(dom.Event{Type: "scroll"})

	msg := buf.String()
	if !strings.Contains(msg, "PANIC") {
		t.Fatalf("log should contain PANIC, got: %s", msg)
	}
	if !strings.Contains(msg, "something broke") {
		t.Fatalf("log should contain panic value, got: %s", msg)
	}
	if !strings.Contains(msg, "trace=") {
		t.Fatalf("log should contain trace, got: %s", msg)
	}
}

type recordingTracer struct {
	noop.Tracer
	spans []string
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.spans = append(r.spans, name)
	return r.Tracer.Start(ctx, name, opts...)
}

func TestTrace(t *testing.T) {
	tracer := &recordingTracer{}

	handler := middleware.Trace(tracer)(func(dom.Event) {})
	handler(dom.Event{Type: "scroll"})
	handler(dom.Event{Type: "click", Target: domtest.NewElement("a")})

	if want := []string{"sitefx.scroll", "sitefx.click"}; !slices.Equal(tracer.spans, want) {
		t.Fatalf("spans = %v, want %v", tracer.spans, want)
	}
}

func TestTrace_NilTracer(t *testing.T) {
	called := false
	middleware.Trace(nil)(func(dom.Event) { called = true })(dom.Event{Type: "load"})

	if !called {
		t.Fatal("handler was not called")
	}
}
