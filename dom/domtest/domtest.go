// Package domtest provides an in-memory implementation of the dom
// interfaces. Selector queries are answered from explicit registrations
// rather than parsed, so tests state exactly which elements a selector
// matches.
package domtest

import (
	"slices"
	"sync"

	"github.com/adamwoolhether/sitefx/dom"
)

// listeners is a set of event handlers keyed by event name.
type listeners struct {
	mu   sync.Mutex
	seq  int
	byEv map[string][]listener
}

type listener struct {
	id int
	h  dom.Handler
}

func (l *listeners) on(event string, h dom.Handler) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.byEv == nil {
		l.byEv = make(map[string][]listener)
	}
	l.seq++
	id := l.seq
	l.byEv[event] = append(l.byEv[event], listener{id: id, h: h})

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()

			l.byEv[event] = slices.DeleteFunc(l.byEv[event], func(cur listener) bool {
				return cur.id == id
			})
		})
	}
}

func (l *listeners) dispatch(ev dom.Event) {
	l.mu.Lock()
	hs := slices.Clone(l.byEv[ev.Type])
	l.mu.Unlock()

	for _, cur := range hs {
		cur.h(ev)
	}
}

func (l *listeners) count(event string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.byEv[event])
}

func (l *listeners) total() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, hs := range l.byEv {
		n += len(hs)
	}
	return n
}

// registry answers selector queries.
type registry struct {
	mu      sync.Mutex
	matches map[string][]dom.Element
}

func (r *registry) register(selector string, els ...*Element) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.matches == nil {
		r.matches = make(map[string][]dom.Element)
	}
	for _, el := range els {
		r.matches[selector] = append(r.matches[selector], el)
	}
}

func (r *registry) queryAll(selector string) []dom.Element {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []dom.Element
	for _, el := range r.matches[selector] {
		if fake, ok := el.(*Element); ok && fake.Removed() {
			continue
		}
		out = append(out, el)
	}
	return out
}
