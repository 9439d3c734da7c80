// Package throttle rate-limits a callback so it runs at most once per
// interval while never dropping the final call of a burst.
//
// # Usage
//
// Wrap a callback with [Wrap], [Func] or [New]:
//
//	onScroll, err := throttle.Func(func() {
//		slog.Info("scroll handled")
//	}, 16*time.Millisecond)
//
// A call arriving at least interval after the previous execution runs
// synchronously. A call arriving inside the window is deferred until the
// window closes; a newer call inside the same window replaces the deferred
// arguments instead of queueing a second execution.
//
// Executions of one throttled callback never overlap. A call that would run
// while an execution is in progress, including the callback calling its own
// wrapper, is deferred until the execution returns. The window of a
// deferred execution starts when the callback returns. Panics raised by the
// callback are not recovered: they reach the caller of the wrapper, or the
// timer goroutine for deferred executions.
package throttle
