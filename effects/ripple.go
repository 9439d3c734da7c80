package effects

import (
	"math"

	"github.com/google/uuid"

	"github.com/adamwoolhether/sitefx/dom"
)

// Ripple adds a ripple span to a clicked button, centred on the click and
// sized to the button's larger side. Each ripple is removed after
// cfg.RippleLifetime; teardown removes ripples still on screen.
func Ripple(h Host, cfg Config) (func(), error) {
	if err := h.require(needDocument); err != nil {
		return nil, err
	}

	sched := newScheduler(h.clock())

	var td teardown
	for _, btn := range h.Document.QueryAll(SelectorButtons) {
		td.add(btn.On("click", h.handler(func(ev dom.Event) {
			rect := btn.Rect()
			size := math.Max(rect.Width, rect.Height)
			x := ev.ClientX - rect.Left - size/2
			y := ev.ClientY - rect.Top - size/2

			ripple := h.Document.CreateElement("span")
			ripple.SetID("ripple-" + uuid.NewString())
			ripple.SetStyle("width", px(size))
			ripple.SetStyle("height", px(size))
			ripple.SetStyle("left", px(x))
			ripple.SetStyle("top", px(y))
			ripple.AddClass(ClassRipple)

			btn.Append(ripple)

			sched.after(cfg.RippleLifetime, ripple.Remove)
		})))
	}
	td.add(sched.flush)

	return td.done(), nil
}
