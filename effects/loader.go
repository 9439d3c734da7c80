package effects

import "github.com/adamwoolhether/sitefx/dom"

// Loader fades the loading overlay once the window has loaded and removes
// it from layout after cfg.LoaderFade.
func Loader(h Host, cfg Config) (func(), error) {
	if err := h.require(needDocument, needWindow); err != nil {
		return nil, err
	}

	sched := newScheduler(h.clock())

	off := h.Window.On("load", h.handler(func(dom.Event) {
		loader, ok := h.Document.Query(SelectorLoader)
		if !ok {
			return
		}

		loader.SetStyle("opacity", "0")
		sched.after(cfg.LoaderFade, func() {
			loader.SetStyle("display", "none")
		})
	}))

	return teardown{sched.stop, off}.done(), nil
}
