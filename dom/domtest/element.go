package domtest

import (
	"slices"
	"sync"

	"github.com/adamwoolhether/sitefx/dom"
)

var _ dom.Element = (*Element)(nil)

// Element is an in-memory dom.Element.
type Element struct {
	listeners
	registry

	Tag string

	mu        sync.Mutex
	id        string
	attrs     map[string]string
	text      string
	classes   []string
	styles    map[string]string
	rect      dom.Rect
	offsetTop float64
	children  []*Element
	parent    *Element
	removed   bool
	scrolls   []bool
}

// NewElement returns an empty element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{
		Tag:    tag,
		attrs:  make(map[string]string),
		styles: make(map[string]string),
	}
}

func (e *Element) On(event string, h dom.Handler) func() {
	return e.listeners.on(event, h)
}

// Dispatch delivers ev to the element's listeners. Type must be set;
// Target defaults to the element.
func (e *Element) Dispatch(ev dom.Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	e.listeners.dispatch(ev)
}

// Listeners returns the number of handlers attached for event.
func (e *Element) Listeners(event string) int {
	return e.listeners.count(event)
}

// TotalListeners returns the number of handlers attached for all events.
func (e *Element) TotalListeners() int {
	return e.listeners.total()
}

func (e *Element) ID() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.id
}

func (e *Element) SetID(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.id = id
}

// SetAttr sets an attribute.
func (e *Element) SetAttr(name, value string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.attrs[name] = value
	return e
}

func (e *Element) Attr(name string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.attrs[name]
}

func (e *Element) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.text
}

func (e *Element) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.text = text
}

func (e *Element) AddClass(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, n := range names {
		if !slices.Contains(e.classes, n) {
			e.classes = append(e.classes, n)
		}
	}
}

func (e *Element) RemoveClass(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.classes = slices.DeleteFunc(e.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
}

func (e *Element) HasClass(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Contains(e.classes, name)
}

func (e *Element) Style(prop string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.styles[prop]
}

func (e *Element) SetStyle(prop, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.styles[prop] = value
}

// SetRect sets the bounding box returned by Rect.
func (e *Element) SetRect(r dom.Rect) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rect = r
	return e
}

func (e *Element) Rect() dom.Rect {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.rect
}

// SetOffsetTop sets the value returned by OffsetTop.
func (e *Element) SetOffsetTop(top float64) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.offsetTop = top
	return e
}

func (e *Element) OffsetTop() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.offsetTop
}

// Register makes QueryAll(selector) on this element return els.
func (e *Element) Register(selector string, els ...*Element) *Element {
	e.registry.register(selector, els...)
	return e
}

func (e *Element) QueryAll(selector string) []dom.Element {
	return e.registry.queryAll(selector)
}

func (e *Element) Append(child dom.Element) {
	c, ok := child.(*Element)
	if !ok {
		return
	}

	e.mu.Lock()
	e.children = append(e.children, c)
	e.mu.Unlock()

	c.mu.Lock()
	c.parent = e
	c.mu.Unlock()
}

// Children returns the attached children that have not been removed.
func (e *Element) Children() []*Element {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []*Element
	for _, c := range e.children {
		if !c.Removed() {
			out = append(out, c)
		}
	}
	return out
}

func (e *Element) Remove() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.removed = true
}

// Removed reports whether Remove was called.
func (e *Element) Removed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.removed
}

func (e *Element) ScrollIntoView(smooth bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.scrolls = append(e.scrolls, smooth)
}

// Scrolls returns the smooth flag of each ScrollIntoView call.
func (e *Element) Scrolls() []bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.scrolls)
}
