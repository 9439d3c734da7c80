//go:build js && wasm

// Command sitefx-wasm attaches the PhotoSlider page effects when loaded
// into the browser as a WebAssembly module.
package main

import (
	"log/slog"
	"os"

	"github.com/adamwoolhether/sitefx"
	"github.com/adamwoolhether/sitefx/effects"
	"github.com/adamwoolhether/sitefx/internal/jsdom"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	host := jsdom.NewHost(log)
	doc := host.Document.(*jsdom.Document)

	cfg, err := jsdom.ReadConfig(doc)
	if err != nil {
		log.Error("reading config, using defaults", "error", err)
		cfg = effects.DefaultConfig()
	}

	doc.OnReady(func() {
		if _, err := sitefx.Init(host, sitefx.WithConfig(cfg), sitefx.WithLogger(log)); err != nil {
			log.Error("attaching effects", "error", err)
		}
	})

	select {}
}
