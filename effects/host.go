package effects

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/adamwoolhether/sitefx/clock"
	"github.com/adamwoolhether/sitefx/dom"
	"github.com/adamwoolhether/sitefx/errs"
)

var (
	ErrNoDocument = errors.New("host document is required")
	ErrNoWindow   = errors.New("host window is required")
	ErrNoObserver = errors.New("host observer factory is required")
)

// Host bundles the capabilities effects are wired to.
type Host struct {
	Document dom.Document
	Window   dom.Window
	Observe  dom.ObserverFactory

	// Carousel resolves the carousel widget. A nil lookup disables
	// CarouselHover.
	Carousel dom.CarouselLookup

	// Clock schedules deferred work. Defaults to clock.Real().
	Clock clock.Clock

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Middleware wraps every event handler, outermost first.
	Middleware []dom.Middleware
}

type capability int

const (
	needDocument capability = iota
	needWindow
	needObserver
)

func (h Host) require(caps ...capability) error {
	for _, c := range caps {
		switch {
		case c == needDocument && h.Document == nil:
			return errs.New(errs.InvalidArgument, ErrNoDocument)
		case c == needWindow && h.Window == nil:
			return errs.New(errs.InvalidArgument, ErrNoWindow)
		case c == needObserver && h.Observe == nil:
			return errs.New(errs.InvalidArgument, ErrNoObserver)
		}
	}

	return nil
}

func (h Host) clock() clock.Clock {
	if h.Clock == nil {
		return clock.Real()
	}
	return h.Clock
}

func (h Host) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

func (h Host) handler(fn dom.Handler) dom.Handler {
	return dom.Wrap(h.Middleware, fn)
}

// /////////////////////////////////////////////////////////////////

// teardown collects cleanup functions and runs them in reverse order.
type teardown []func()

func (td *teardown) add(fns ...func()) {
	*td = append(*td, fns...)
}

func (td teardown) done() func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(td) - 1; i >= 0; i-- {
				td[i]()
			}
		})
	}
}

func noop() {}

// /////////////////////////////////////////////////////////////////

// scheduler tracks deferred callbacks so an effect can cancel them on
// teardown. Callbacks scheduled after stop are dropped.
type scheduler struct {
	clock clock.Clock

	mu     sync.Mutex
	timers map[*scheduled]struct{}
	closed bool
}

type scheduled struct {
	timer clock.Timer
	fn    func()
}

func newScheduler(c clock.Clock) *scheduler {
	return &scheduler{
		clock:  c,
		timers: make(map[*scheduled]struct{}),
	}
}

func (s *scheduler) after(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	e := &scheduled{fn: fn}
	e.timer = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		_, live := s.timers[e]
		delete(s.timers, e)
		s.mu.Unlock()

		if live {
			fn()
		}
	})
	s.timers[e] = struct{}{}
}

// stop cancels every pending callback.
func (s *scheduler) stop() {
	for _, e := range s.drain() {
		e.timer.Stop()
	}
}

// flush cancels every pending callback and runs it immediately.
func (s *scheduler) flush() {
	for _, e := range s.drain() {
		if e.timer.Stop() {
			e.fn()
		}
	}
}

func (s *scheduler) drain() []*scheduled {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	out := make([]*scheduled, 0, len(s.timers))
	for e := range s.timers {
		out = append(out, e)
	}
	clear(s.timers)

	return out
}

func (s *scheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.timers)
}
