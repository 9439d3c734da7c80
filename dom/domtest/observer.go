package domtest

import (
	"slices"
	"sync"

	"github.com/adamwoolhether/sitefx/dom"
)

// Observers records the observers created through its Factory.
type Observers struct {
	mu  sync.Mutex
	all []*Observer
}

// Factory returns a dom.ObserverFactory backed by o.
func (o *Observers) Factory() dom.ObserverFactory {
	return func(opts dom.ObserverOptions, cb func([]dom.Entry)) dom.Observer {
		obs := &Observer{Options: opts, cb: cb}

		o.mu.Lock()
		o.all = append(o.all, obs)
		o.mu.Unlock()

		return obs
	}
}

// All returns the observers in creation order.
func (o *Observers) All() []*Observer {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.all)
}

// Observer is an in-memory dom.Observer.
type Observer struct {
	Options dom.ObserverOptions

	mu           sync.Mutex
	cb           func([]dom.Entry)
	observed     []dom.Element
	disconnected bool
}

func (o *Observer) Observe(el dom.Element) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.disconnected || slices.Contains(o.observed, el) {
		return
	}
	o.observed = append(o.observed, el)
}

func (o *Observer) Unobserve(el dom.Element) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.observed = slices.DeleteFunc(o.observed, func(cur dom.Element) bool {
		return cur == el
	})
}

func (o *Observer) Disconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.disconnected = true
	o.observed = nil
}

// Observed returns the elements currently being watched.
func (o *Observer) Observed() []dom.Element {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.observed)
}

// Disconnected reports whether Disconnect was called.
func (o *Observer) Disconnected() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.disconnected
}

// Intersect reports els as visible. Elements that are not observed are
// skipped, as a host would.
func (o *Observer) Intersect(els ...dom.Element) {
	o.report(els, true)
}

// Leave reports els as no longer visible.
func (o *Observer) Leave(els ...dom.Element) {
	o.report(els, false)
}

func (o *Observer) report(els []dom.Element, visible bool) {
	o.mu.Lock()
	var entries []dom.Entry
	for _, el := range els {
		if slices.Contains(o.observed, el) {
			entries = append(entries, dom.Entry{Target: el, Intersecting: visible})
		}
	}
	cb := o.cb
	o.mu.Unlock()

	if len(entries) > 0 {
		cb(entries)
	}
}
