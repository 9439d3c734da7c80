// Package sitefx wires the PhotoSlider page effects onto a host document.
package sitefx

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/adamwoolhether/sitefx/dom"
	"github.com/adamwoolhether/sitefx/effects"
	"github.com/adamwoolhether/sitefx/middleware"
)

// Init validates the configuration and attaches every effect to host. The
// returned function detaches them all in reverse order. If any effect fails
// to attach, the ones already attached are detached before returning.
//
// Every event handler is wrapped with panic recovery, tracing and debug
// logging, ahead of any middleware supplied with WithMiddleware.
func Init(host effects.Host, optFns ...Option) (func(), error) {
	opts := options{config: effects.DefaultConfig()}
	for _, opt := range optFns {
		opt(&opts)
	}
	if opts.logger == nil {
		opts.logger = host.Logger
	}
	if opts.logger == nil {
		opts.logger = slog.Default()
	}
	if opts.tracer == nil {
		opts.tracer = otel.Tracer("github.com/adamwoolhether/sitefx")
	}

	if err := effects.ValidateConfig(opts.config); err != nil {
		return nil, fmt.Errorf("sitefx init: %w", err)
	}

	_, span := opts.tracer.Start(context.Background(), "sitefx.init")
	defer span.End()

	host.Logger = opts.logger
	host.Middleware = append([]dom.Middleware{
		middleware.Panics(opts.logger),
		middleware.Trace(opts.tracer),
		middleware.Logger(opts.logger),
	}, opts.middleware...)

	cfg := opts.config
	setups := []struct {
		name  string
		setup func() (func(), error)
	}{
		{"styles", func() (func(), error) { return effects.Styles(host) }},
		{"smooth-scroll", func() (func(), error) { return effects.SmoothScroll(host) }},
		{"scroll-spy", func() (func(), error) { return effects.ScrollSpy(host, cfg) }},
		{"reveal", func() (func(), error) { return effects.Reveal(host, cfg) }},
		{"parallax", func() (func(), error) { return effects.Parallax(host, cfg) }},
		{"card-hover", func() (func(), error) { return effects.CardHover(host) }},
		{"type-heading", func() (func(), error) { return effects.TypeHeading(host, cfg) }},
		{"icon-float", func() (func(), error) { return effects.IconFloat(host) }},
		{"carousel-hover", func() (func(), error) { return effects.CarouselHover(host) }},
		{"loader", func() (func(), error) { return effects.Loader(host, cfg) }},
		{"footer-reveal", func() (func(), error) { return effects.FooterReveal(host) }},
		{"ripple", func() (func(), error) { return effects.Ripple(host, cfg) }},
		{"scroll-throttle", func() (func(), error) { return effects.ScrollThrottle(host, cfg, opts.onScroll) }},
	}

	var offs []func()
	detach := func() {
		for i := len(offs) - 1; i >= 0; i-- {
			offs[i]()
		}
	}

	for _, s := range setups {
		off, err := s.setup()
		if err != nil {
			detach()
			span.RecordError(err)
			span.SetStatus(codes.Error, s.name)
			return nil, fmt.Errorf("sitefx init %s: %w", s.name, err)
		}
		offs = append(offs, off)
	}

	span.SetAttributes(attribute.Int("effects", len(offs)))
	opts.logger.Info("sitefx effects attached", "effects", len(offs))

	var once sync.Once
	return func() {
		once.Do(func() {
			detach()
			opts.logger.Info("sitefx effects detached", "effects", len(offs))
		})
	}, nil
}
