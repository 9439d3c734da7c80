//go:build js && wasm

package jsdom

import (
	"sync"
	"syscall/js"

	"github.com/adamwoolhether/sitefx/dom"
)

type element struct {
	v js.Value
}

func wrap(v js.Value) dom.Element {
	return &element{v: v}
}

// Value returns the JavaScript node behind el, if el was created by this
// package.
func Value(el dom.Element) (js.Value, bool) {
	e, ok := el.(*element)
	if !ok {
		return js.Undefined(), false
	}
	return e.v, true
}

func (e *element) On(event string, h dom.Handler) func() {
	return listen(e.v, event, h)
}

func (e *element) ID() string         { return e.v.Get("id").String() }
func (e *element) SetID(id string)    { e.v.Set("id", id) }
func (e *element) Text() string       { return e.v.Get("textContent").String() }
func (e *element) SetText(s string)   { e.v.Set("textContent", s) }
func (e *element) OffsetTop() float64 { return e.v.Get("offsetTop").Float() }

func (e *element) Attr(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *element) AddClass(names ...string) {
	e.v.Get("classList").Call("add", anys(names)...)
}

func (e *element) RemoveClass(names ...string) {
	e.v.Get("classList").Call("remove", anys(names)...)
}

func (e *element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

func (e *element) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *element) Rect() dom.Rect {
	r := e.v.Call("getBoundingClientRect")
	return dom.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e *element) QueryAll(selector string) []dom.Element {
	return queryAll(e.v, selector)
}

func (e *element) Append(child dom.Element) {
	if v, ok := Value(child); ok {
		e.v.Call("appendChild", v)
	}
}

func (e *element) Remove() {
	e.v.Call("remove")
}

func (e *element) ScrollIntoView(smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	e.v.Call("scrollIntoView", map[string]any{"behavior": behavior, "block": "start"})
}

// /////////////////////////////////////////////////////////////////

// listen attaches h to target. The returned function removes the listener
// and releases the callback.
func listen(target js.Value, event string, h dom.Handler) func() {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			h(toEvent(args[0]))
		}
		return nil
	})
	target.Call("addEventListener", event, fn)

	var once sync.Once
	return func() {
		once.Do(func() {
			target.Call("removeEventListener", event, fn)
			fn.Release()
		})
	}
}

func toEvent(v js.Value) dom.Event {
	ev := dom.Event{
		Type:    v.Get("type").String(),
		Prevent: func() { v.Call("preventDefault") },
	}

	if target := v.Get("target"); target.Truthy() && target.Get("nodeType").Equal(js.ValueOf(1)) {
		ev.Target = wrap(target)
	}
	if x := v.Get("clientX"); x.Type() == js.TypeNumber {
		ev.ClientX = x.Float()
		ev.ClientY = v.Get("clientY").Float()
	}

	return ev
}

// queryAll runs querySelectorAll on root. An invalid selector matches
// nothing.
func queryAll(root js.Value, selector string) (els []dom.Element) {
	defer func() {
		if recover() != nil {
			els = nil
		}
	}()

	nodes := root.Call("querySelectorAll", selector)
	n := nodes.Length()
	els = make([]dom.Element, 0, n)
	for i := range n {
		els = append(els, wrap(nodes.Index(i)))
	}

	return els
}

func anys(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
