//go:build js && wasm

package jsdom

import (
	"sync"
	"syscall/js"

	"github.com/adamwoolhether/sitefx/dom"
)

// Observe creates IntersectionObserver instances.
func Observe(opts dom.ObserverOptions, cb func([]dom.Entry)) dom.Observer {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}

		raw := args[0]
		entries := make([]dom.Entry, 0, raw.Length())
		for i := range raw.Length() {
			e := raw.Index(i)
			entries = append(entries, dom.Entry{
				Target:       wrap(e.Get("target")),
				Intersecting: e.Get("isIntersecting").Bool(),
			})
		}
		cb(entries)

		return nil
	})

	init := map[string]any{"threshold": opts.Threshold}
	if opts.RootMargin != "" {
		init["rootMargin"] = opts.RootMargin
	}

	return &observer{
		v:  js.Global().Get("IntersectionObserver").New(fn, init),
		fn: fn,
	}
}

type observer struct {
	v    js.Value
	fn   js.Func
	once sync.Once
}

func (o *observer) Observe(el dom.Element) {
	if v, ok := Value(el); ok {
		o.v.Call("observe", v)
	}
}

func (o *observer) Unobserve(el dom.Element) {
	if v, ok := Value(el); ok {
		o.v.Call("unobserve", v)
	}
}

func (o *observer) Disconnect() {
	o.once.Do(func() {
		o.v.Call("disconnect")
		o.fn.Release()
	})
}
