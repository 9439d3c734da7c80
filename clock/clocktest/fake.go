// Package clocktest provides a manually driven clock.Clock for tests.
package clocktest

import (
	"sync"
	"time"

	"github.com/adamwoolhether/sitefx/clock"
)

// Fake is a clock.Clock whose time only moves when Advance is called.
// Timers fire synchronously on the goroutine calling Advance, in deadline
// order, with ties broken by scheduling order.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*timer
}

// NewFake returns a Fake starting at the given time.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the fake's current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// AfterFunc schedules fn to run once the fake has been advanced by d.
// A non-positive d fires on the next call to Advance, including Advance(0).
func (f *Fake) AfterFunc(d time.Duration, fn func()) clock.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	if d < 0 {
		d = 0
	}

	f.seq++
	t := &timer{
		fake: f,
		at:   f.now.Add(d),
		seq:  f.seq,
		fn:   fn,
	}
	f.timers = append(f.timers, t)

	return t
}

// Advance moves the clock forward by d, firing every timer that becomes
// due along the way. Timers scheduled by a firing callback are also fired
// if their deadline falls within the advanced window. A callback may call
// Advance itself; time never moves backwards.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		next := f.nextDueLocked(target)
		if next == nil {
			if target.After(f.now) {
				f.now = target
			}
			f.mu.Unlock()
			return
		}

		f.removeLocked(next)
		next.fired = true
		if next.at.After(f.now) {
			f.now = next.at
		}
		f.mu.Unlock()

		next.fn()
	}
}

// Pending reports the number of timers that have neither fired nor been stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.timers)
}

func (f *Fake) nextDueLocked(target time.Time) *timer {
	var next *timer
	for _, t := range f.timers {
		if t.at.After(target) {
			continue
		}
		if next == nil || t.at.Before(next.at) || (t.at.Equal(next.at) && t.seq < next.seq) {
			next = t
		}
	}

	return next
}

func (f *Fake) removeLocked(t *timer) {
	for i, cur := range f.timers {
		if cur == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			return
		}
	}
}

type timer struct {
	fake    *Fake
	at      time.Time
	seq     uint64
	fn      func()
	fired   bool
	stopped bool
}

func (t *timer) Stop() bool {
	t.fake.mu.Lock()
	defer t.fake.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	t.fake.removeLocked(t)

	return true
}
