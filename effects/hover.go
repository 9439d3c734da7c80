package effects

import "github.com/adamwoolhether/sitefx/dom"

// CardHover lifts cards while the pointer is over them.
func CardHover(h Host) (func(), error) {
	if err := h.require(needDocument); err != nil {
		return nil, err
	}

	var td teardown
	for _, card := range h.Document.QueryAll(SelectorCards) {
		td.add(
			card.On("mouseenter", h.handler(func(dom.Event) {
				card.SetStyle("transform", "translateY(-15px) rotateX(5deg)")
				card.SetStyle("box-shadow", "0 20px 40px rgba(0,0,0,0.15)")
			})),
			card.On("mouseleave", h.handler(func(dom.Event) {
				card.SetStyle("transform", "translateY(0) rotateX(0)")
				card.SetStyle("box-shadow", "0 2px 4px rgba(0,0,0,0.1)")
			})),
		)
	}

	return td.done(), nil
}

// IconFloat animates icons with the float keyframes while hovered.
func IconFloat(h Host) (func(), error) {
	if err := h.require(needDocument); err != nil {
		return nil, err
	}

	var td teardown
	for _, icon := range h.Document.QueryAll(SelectorIcons) {
		td.add(
			icon.On("mouseenter", h.handler(func(dom.Event) {
				icon.SetStyle("animation", "float 2s ease-in-out infinite")
			})),
			icon.On("mouseleave", h.handler(func(dom.Event) {
				icon.SetStyle("animation", "none")
			})),
		)
	}

	return td.done(), nil
}

// CarouselHover pauses the carousel while hovered and resumes cycling when
// the pointer leaves. The widget is looked up on every event, so a
// carousel initialised after setup is still controlled.
func CarouselHover(h Host) (func(), error) {
	if err := h.require(needDocument); err != nil {
		return nil, err
	}

	el, ok := h.Document.Query(SelectorCarousel)
	if !ok || h.Carousel == nil {
		h.logger().Debug("carousel hover disabled", "found", ok, "lookup", h.Carousel != nil)
		return noop, nil
	}

	withCarousel := func(fn func(dom.Carousel)) dom.Handler {
		return h.handler(func(dom.Event) {
			if c, ok := h.Carousel(el); ok {
				fn(c)
			}
		})
	}

	return teardown{
		el.On("mouseenter", withCarousel(dom.Carousel.Pause)),
		el.On("mouseleave", withCarousel(dom.Carousel.Cycle)),
	}.done(), nil
}
