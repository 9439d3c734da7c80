package dom

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// EventTarget accepts event listeners.
type EventTarget interface {
	// On attaches h for the named event and returns a function that
	// detaches it. Calling the returned function more than once is a no-op.
	On(event string, h Handler) (off func())
}

// Element is a node in the host document.
type Element interface {
	EventTarget

	ID() string
	SetID(id string)
	Attr(name string) string
	Text() string
	SetText(text string)

	AddClass(names ...string)
	RemoveClass(names ...string)
	HasClass(name string) bool

	// Style returns an inline style property by its CSS name.
	Style(prop string) string
	// SetStyle sets an inline style property by its CSS name.
	SetStyle(prop, value string)

	Rect() Rect
	OffsetTop() float64

	QueryAll(selector string) []Element
	Append(child Element)
	Remove()
	ScrollIntoView(smooth bool)
}

// Document is the root of the host page.
type Document interface {
	EventTarget

	Query(selector string) (Element, bool)
	QueryAll(selector string) []Element
	CreateElement(tag string) Element

	// AppendStyle injects a stylesheet into the document head and returns
	// the created style element.
	AppendStyle(css string) Element
}

// Window is the browser viewport.
type Window interface {
	EventTarget

	ScrollY() float64
}

// Carousel is the capability of the host-provided carousel widget.
type Carousel interface {
	Pause()
	Cycle()
}

// CarouselLookup resolves the widget instance bound to an element.
type CarouselLookup func(el Element) (Carousel, bool)

// /////////////////////////////////////////////////////////////////

// Entry reports a visibility change for an observed element.
type Entry struct {
	Target       Element
	Intersecting bool
}

// ObserverOptions configures an intersection observer.
type ObserverOptions struct {
	Threshold  float64
	RootMargin string
}

// Observer watches elements for viewport intersection.
type Observer interface {
	Observe(el Element)
	Unobserve(el Element)
	Disconnect()
}

// ObserverFactory creates an Observer that reports to cb.
type ObserverFactory func(opts ObserverOptions, cb func(entries []Entry)) Observer
