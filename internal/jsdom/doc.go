//go:build js && wasm

// Package jsdom adapts the browser DOM, reached through syscall/js, to the
// dom interfaces.
package jsdom
