package effects

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/adamwoolhether/sitefx/dom"
	"github.com/adamwoolhether/sitefx/throttle"
)

// SmoothScroll makes in-page anchors scroll their target into view
// instead of jumping.
func SmoothScroll(h Host) (func(), error) {
	if err := h.require(needDocument); err != nil {
		return nil, err
	}

	var td teardown
	for _, a := range h.Document.QueryAll(SelectorAnchors) {
		td.add(a.On("click", h.handler(func(ev dom.Event) {
			ev.PreventDefault()

			href := a.Attr("href")
			if len(href) < 2 {
				return
			}
			if target, ok := h.Document.Query(href); ok {
				target.ScrollIntoView(true)
			}
		})))
	}

	return td.done(), nil
}

// ScrollSpy marks the nav link of the last section whose top, less
// cfg.ScrollSpyOffset, has been scrolled past.
func ScrollSpy(h Host, cfg Config) (func(), error) {
	if err := h.require(needDocument, needWindow); err != nil {
		return nil, err
	}

	off := h.Window.On("scroll", h.handler(func(dom.Event) {
		y := h.Window.ScrollY()

		current := ""
		for _, section := range h.Document.QueryAll(SelectorSections) {
			if y >= section.OffsetTop()-cfg.ScrollSpyOffset {
				current = section.ID()
			}
		}

		for _, link := range h.Document.QueryAll(SelectorNavLinks) {
			link.RemoveClass(ClassActive)
			if link.Attr("href") == "#"+current {
				link.AddClass(ClassActive)
			}
		}
	}))

	return teardown{off}.done(), nil
}

// Parallax translates the carousel vertically by scrollY * cfg.ParallaxRate.
func Parallax(h Host, cfg Config) (func(), error) {
	if err := h.require(needDocument, needWindow); err != nil {
		return nil, err
	}

	off := h.Window.On("scroll", h.handler(func(dom.Event) {
		carousel, ok := h.Document.Query(SelectorCarousel)
		if !ok {
			return
		}

		shift := h.Window.ScrollY() * cfg.ParallaxRate
		carousel.SetStyle("transform", fmt.Sprintf("translateY(%s)", px(shift)))
	}))

	return teardown{off}.done(), nil
}

// ScrollThrottle calls onScroll for window scroll events at most once per
// cfg.ScrollInterval, always delivering the last event of a burst. A nil
// onScroll only logs. At most one log line is written per
// cfg.ScrollLogEvery of host clock time; zero logs every execution.
func ScrollThrottle(h Host, cfg Config, onScroll dom.Handler) (func(), error) {
	if err := h.require(needWindow); err != nil {
		return nil, err
	}

	log := h.logger()
	clk := h.clock()
	logLimit := rate.NewLimiter(rate.Every(cfg.ScrollLogEvery), 1)

	var closed atomic.Bool
	handle := h.handler(func(ev dom.Event) {
		if closed.Load() {
			return
		}

		if onScroll != nil {
			onScroll(ev)
		}

		if logLimit.AllowN(clk.Now(), 1) {
			log.Debug("scroll handled efficiently", "scrollY", h.Window.ScrollY())
		}
	})

	th, err := throttle.New(handle, cfg.ScrollInterval,
		throttle.WithClock(clk),
		throttle.WithLogger(func() *slog.Logger { return log }),
		throttle.WithName("scroll"),
	)
	if err != nil {
		return nil, fmt.Errorf("scroll throttle: %w", err)
	}

	off := h.Window.On("scroll", th.Call)

	return teardown{func() { closed.Store(true) }, off}.done(), nil
}

// px formats v as a CSS pixel length.
func px(v float64) string {
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
