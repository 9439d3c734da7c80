//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/adamwoolhether/sitefx/dom"
)

// Document wraps the page's document object.
type Document struct {
	v js.Value
}

// NewDocument returns the global document.
func NewDocument() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) On(event string, h dom.Handler) func() {
	return listen(d.v, event, h)
}

// Query returns the first element matching selector. An invalid selector
// matches nothing.
func (d *Document) Query(selector string) (el dom.Element, ok bool) {
	defer func() {
		if recover() != nil {
			el, ok = nil, false
		}
	}()

	v := d.v.Call("querySelector", selector)
	if v.IsNull() {
		return nil, false
	}

	return wrap(v), true
}

func (d *Document) QueryAll(selector string) []dom.Element {
	return queryAll(d.v, selector)
}

func (d *Document) CreateElement(tag string) dom.Element {
	return wrap(d.v.Call("createElement", tag))
}

func (d *Document) AppendStyle(css string) dom.Element {
	style := d.v.Call("createElement", "style")
	style.Set("textContent", css)
	d.v.Get("head").Call("appendChild", style)

	return wrap(style)
}

// Loading reports whether the document is still being parsed.
func (d *Document) Loading() bool {
	return d.v.Get("readyState").String() == "loading"
}

// OnReady calls fn once the DOM has been parsed, immediately if it
// already has.
func (d *Document) OnReady(fn func()) {
	if !d.Loading() {
		fn()
		return
	}

	var off func()
	off = d.On("DOMContentLoaded", func(dom.Event) {
		off()
		fn()
	})
}

// /////////////////////////////////////////////////////////////////

// Window wraps the global window object.
type Window struct {
	v js.Value
}

// NewWindow returns the global window.
func NewWindow() *Window {
	return &Window{v: js.Global()}
}

func (w *Window) On(event string, h dom.Handler) func() {
	return listen(w.v, event, h)
}

func (w *Window) ScrollY() float64 {
	return w.v.Get("pageYOffset").Float()
}
