package domtest

import (
	"sync"

	"github.com/adamwoolhether/sitefx/dom"
)

var (
	_ dom.Document = (*Document)(nil)
	_ dom.Window   = (*Window)(nil)
	_ dom.Carousel = (*Carousel)(nil)
)

// Document is an in-memory dom.Document.
type Document struct {
	listeners
	registry

	mu      sync.Mutex
	created []*Element
	styles  []*Element
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

func (d *Document) On(event string, h dom.Handler) func() {
	return d.listeners.on(event, h)
}

// Dispatch delivers ev to the document's listeners.
func (d *Document) Dispatch(ev dom.Event) {
	d.listeners.dispatch(ev)
}

// Register makes Query and QueryAll return els for selector.
func (d *Document) Register(selector string, els ...*Element) *Document {
	d.registry.register(selector, els...)
	return d
}

func (d *Document) Query(selector string) (dom.Element, bool) {
	all := d.registry.queryAll(selector)
	if len(all) == 0 {
		return nil, false
	}
	return all[0], true
}

func (d *Document) QueryAll(selector string) []dom.Element {
	return d.registry.queryAll(selector)
}

func (d *Document) CreateElement(tag string) dom.Element {
	el := NewElement(tag)

	d.mu.Lock()
	d.created = append(d.created, el)
	d.mu.Unlock()

	return el
}

// Created returns every element made by CreateElement.
func (d *Document) Created() []*Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]*Element(nil), d.created...)
}

func (d *Document) AppendStyle(css string) dom.Element {
	el := NewElement("style")
	el.SetText(css)

	d.mu.Lock()
	d.styles = append(d.styles, el)
	d.mu.Unlock()

	return el
}

// Styles returns the stylesheets that are still attached.
func (d *Document) Styles() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []string
	for _, el := range d.styles {
		if !el.Removed() {
			out = append(out, el.Text())
		}
	}
	return out
}

// /////////////////////////////////////////////////////////////////

// Window is an in-memory dom.Window.
type Window struct {
	listeners

	mu      sync.Mutex
	scrollY float64
}

// NewWindow returns a window scrolled to the top.
func NewWindow() *Window {
	return &Window{}
}

func (w *Window) On(event string, h dom.Handler) func() {
	return w.listeners.on(event, h)
}

// Dispatch delivers ev to the window's listeners.
func (w *Window) Dispatch(ev dom.Event) {
	w.listeners.dispatch(ev)
}

// Listeners returns the number of handlers attached for event.
func (w *Window) Listeners(event string) int {
	return w.listeners.count(event)
}

// ScrollTo sets the scroll offset and dispatches a scroll event.
func (w *Window) ScrollTo(y float64) {
	w.mu.Lock()
	w.scrollY = y
	w.mu.Unlock()

	w.Dispatch(dom.Event{Type: "scroll"})
}

func (w *Window) ScrollY() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.scrollY
}

// /////////////////////////////////////////////////////////////////

// Carousel counts Pause and Cycle calls.
type Carousel struct {
	mu     sync.Mutex
	paused int
	cycled int
}

func (c *Carousel) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.paused++
}

func (c *Carousel) Cycle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cycled++
}

// Counts returns how many times Pause and Cycle were called.
func (c *Carousel) Counts() (paused, cycled int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.paused, c.cycled
}

// Lookup returns a dom.CarouselLookup resolving el to c.
func (c *Carousel) Lookup(el dom.Element) dom.CarouselLookup {
	return func(got dom.Element) (dom.Carousel, bool) {
		if got != el {
			return nil, false
		}
		return c, true
	}
}
