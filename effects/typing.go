package effects

import (
	"fmt"
	"time"

	"github.com/adamwoolhether/sitefx/dom"
	"github.com/adamwoolhether/sitefx/errs"
)

// TypeWriter replaces el's text with text typed one rune per speed, showing
// caret as the element's right border until typing completes. The first
// rune is written before TypeWriter returns. The returned function stops
// typing.
func TypeWriter(h Host, el dom.Element, text string, speed time.Duration, caret string) (func(), error) {
	if el == nil {
		return nil, errs.New(errs.InvalidArgument, fmt.Errorf("typewriter: element is required"))
	}
	if speed <= 0 {
		return nil, errs.New(errs.InvalidArgument, fmt.Errorf("typewriter: speed[%s] must be greater than zero", speed))
	}

	sched := newScheduler(h.clock())
	typeInto(sched, el, text, speed, caret)

	return sched.stop, nil
}

// TypeHeading retypes the about heading after cfg.TypingDelay.
func TypeHeading(h Host, cfg Config) (func(), error) {
	if err := h.require(needDocument); err != nil {
		return nil, err
	}

	sched := newScheduler(h.clock())
	sched.after(cfg.TypingDelay, func() {
		heading, ok := h.Document.Query(SelectorHeading)
		if !ok {
			return
		}

		text := heading.Text()
		if text == "" {
			return
		}

		typeInto(sched, heading, text, cfg.TypingSpeed, cfg.Caret)
	})

	return sched.stop, nil
}

func typeInto(sched *scheduler, el dom.Element, text string, speed time.Duration, caret string) {
	runes := []rune(text)
	typed := 0

	el.SetText("")
	el.SetStyle("border-right", caret)

	var step func()
	step = func() {
		if typed < len(runes) {
			typed++
			el.SetText(string(runes[:typed]))
			sched.after(speed, step)
			return
		}

		el.SetStyle("border-right", "none")
	}
	step()
}
