package effects

import (
	"time"

	"github.com/adamwoolhether/sitefx/dom"
)

// Reveal adds ClassAnimateIn to animated elements and sections once they
// enter the viewport. Staggered children of a revealed element follow at
// cfg.StaggerDelay intervals. Each element is revealed once.
func Reveal(h Host, cfg Config) (func(), error) {
	if err := h.require(needDocument, needObserver); err != nil {
		return nil, err
	}

	sched := newScheduler(h.clock())

	var obs dom.Observer
	obs = h.Observe(dom.ObserverOptions{
		Threshold:  cfg.RevealThreshold,
		RootMargin: cfg.RevealRootMargin,
	}, func(entries []dom.Entry) {
		for _, entry := range entries {
			if !entry.Intersecting {
				continue
			}

			entry.Target.AddClass(ClassAnimateIn)

			for i, child := range entry.Target.QueryAll(SelectorStaggered) {
				sched.after(time.Duration(i)*cfg.StaggerDelay, func() {
					child.AddClass(ClassAnimateIn)
				})
			}

			obs.Unobserve(entry.Target)
		}
	})

	for _, el := range h.Document.QueryAll(SelectorReveal) {
		obs.Observe(el)
	}
	for _, el := range h.Document.QueryAll(SelectorSection) {
		obs.Observe(el)
	}

	return teardown{obs.Disconnect, sched.stop}.done(), nil
}

// FooterReveal hides the footer social links and slides each one in when
// it becomes visible.
func FooterReveal(h Host) (func(), error) {
	if err := h.require(needDocument, needObserver); err != nil {
		return nil, err
	}

	obs := h.Observe(dom.ObserverOptions{}, func(entries []dom.Entry) {
		for _, entry := range entries {
			if entry.Intersecting {
				entry.Target.SetStyle("opacity", "1")
				entry.Target.SetStyle("transform", "translateY(0)")
			}
		}
	})

	for _, el := range h.Document.QueryAll(SelectorFooter) {
		el.SetStyle("opacity", "0")
		el.SetStyle("transform", "translateY(20px)")
		el.SetStyle("transition", "all 0.5s ease")
		obs.Observe(el)
	}

	return teardown{obs.Disconnect}.done(), nil
}
