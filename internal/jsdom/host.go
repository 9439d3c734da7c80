//go:build js && wasm

package jsdom

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/adamwoolhether/sitefx/clock"
	"github.com/adamwoolhether/sitefx/dom"
	"github.com/adamwoolhether/sitefx/effects"
)

// NewHost returns an effects.Host bound to the browser globals.
func NewHost(log *slog.Logger) effects.Host {
	return effects.Host{
		Document: NewDocument(),
		Window:   NewWindow(),
		Observe:  Observe,
		Carousel: Carousel,
		Clock:    clock.Real(),
		Logger:   log,
	}
}

// Carousel resolves the Bootstrap carousel instance bound to el.
func Carousel(el dom.Element) (dom.Carousel, bool) {
	v, ok := Value(el)
	if !ok {
		return nil, false
	}

	ctor := js.Global().Get("bootstrap")
	if !ctor.Truthy() {
		return nil, false
	}
	ctor = ctor.Get("Carousel")
	if !ctor.Truthy() {
		return nil, false
	}

	inst := ctor.Call("getInstance", v)
	if !inst.Truthy() {
		return nil, false
	}

	return carousel{v: inst}, true
}

type carousel struct {
	v js.Value
}

func (c carousel) Pause() { c.v.Call("pause") }
func (c carousel) Cycle() { c.v.Call("cycle") }

// ReadConfig decodes the configuration embedded in the page, falling back
// to effects.DefaultConfig for anything the page omits.
func ReadConfig(doc *Document) (effects.Config, error) {
	cfg := effects.DefaultConfig()

	el := doc.v.Call("getElementById", effects.ConfigElementID)
	if el.IsNull() {
		return cfg, nil
	}

	if err := json.Unmarshal([]byte(el.Get("textContent").String()), &cfg); err != nil {
		return effects.Config{}, fmt.Errorf("decode #%s: %w", effects.ConfigElementID, err)
	}

	return cfg, nil
}
