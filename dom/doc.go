// Package dom declares the host capabilities the page effects depend on:
// elements, the document, the window, intersection observers and the
// carousel widget. The browser adapter lives in internal/jsdom; tests use
// the in-memory implementation in dom/domtest.
package dom
