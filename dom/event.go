package dom

import "slices"

// Event is a host event delivered to a Handler.
type Event struct {
	Type    string
	Target  Element
	ClientX float64
	ClientY float64

	// Prevent cancels the host's default action. It may be nil.
	Prevent func()
}

// PreventDefault cancels the host's default action, if any.
func (e Event) PreventDefault() {
	if e.Prevent != nil {
		e.Prevent()
	}
}

// Handler responds to an Event.
type Handler func(ev Event)

// Middleware defines a signature to chain Handler together.
type Middleware func(handler Handler) Handler

// Wrap applies mw around handler so the first middleware runs outermost.
func Wrap(mw []Middleware, handler Handler) Handler {
	for _, mwFn := range slices.Backward(mw) {
		if mwFn != nil {
			handler = mwFn(handler)
		}
	}

	return handler
}
