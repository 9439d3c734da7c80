package effects

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/adamwoolhether/sitefx/clock/clocktest"
	"github.com/adamwoolhether/sitefx/dom"
	"github.com/adamwoolhether/sitefx/dom/domtest"
	"github.com/adamwoolhether/sitefx/errs"
)

var epoch = time.Unix(1_700_000_000, 0)

type fixture struct {
	doc  *domtest.Document
	win  *domtest.Window
	obs  *domtest.Observers
	clk  *clocktest.Fake
	host Host
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		doc: domtest.NewDocument(),
		win: domtest.NewWindow(),
		obs: &domtest.Observers{},
		clk: clocktest.NewFake(epoch),
	}
	f.host = Host{
		Document: f.doc,
		Window:   f.win,
		Observe:  f.obs.Factory(),
		Clock:    f.clk,
	}

	return f
}

func TestHost_Require(t *testing.T) {
	full := newFixture(t).host

	testCases := []struct {
		name   string
		host   Host
		setup  func(Host) (func(), error)
		expErr error
	}{
		{
			name:   "Missing document",
			host:   Host{Window: full.Window},
			setup:  func(h Host) (func(), error) { return Parallax(h, DefaultConfig()) },
			expErr: ErrNoDocument,
		},
		{
			name:   "Missing window",
			host:   Host{Document: full.Document},
			setup:  func(h Host) (func(), error) { return ScrollSpy(h, DefaultConfig()) },
			expErr: ErrNoWindow,
		},
		{
			name:   "Missing observer",
			host:   Host{Document: full.Document, Window: full.Window},
			setup:  func(h Host) (func(), error) { return Reveal(h, DefaultConfig()) },
			expErr: ErrNoObserver,
		},
		{
			name:  "Complete host",
			host:  full,
			setup: func(h Host) (func(), error) { return Reveal(h, DefaultConfig()) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			off, err := tc.setup(tc.host)

			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Fatalf("exp err %v; got: %v", tc.expErr, err)
				}
				if !errs.IsKind(err, errs.InvalidArgument) {
					t.Fatalf("exp InvalidArgument kind; got: %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("exp nil err, got: %v", err)
			}
			off()
		})
	}
}

func TestHost_HandlerAppliesMiddleware(t *testing.T) {
	var got []string
	h := Host{Middleware: []dom.Middleware{
		func(next dom.Handler) dom.Handler {
			return func(ev dom.Event) {
				got = append(got, "mw")
				next(ev)
			}
		},
	}}

	h.handler(func(dom.Event) { got = append(got, "fn") })(dom.Event{Type: "click"})

	if want := []string{"mw", "fn"}; !slices.Equal(got, want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
}

func TestTeardown_ReverseAndOnce(t *testing.T) {
	var got []int
	var td teardown
	td.add(func() { got = append(got, 1) }, func() { got = append(got, 2) })
	td.add(func() { got = append(got, 3) })

	done := td.done()
	done()
	done()

	if want := []int{3, 2, 1}; !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestScheduler_Stop(t *testing.T) {
	clk := clocktest.NewFake(epoch)
	sched := newScheduler(clk)

	fired := 0
	sched.after(10*time.Millisecond, func() { fired++ })
	sched.after(20*time.Millisecond, func() { fired++ })

	clk.Advance(10 * time.Millisecond)
	if fired != 1 || sched.pending() != 1 {
		t.Fatalf("fired = %d pending = %d, want 1 1", fired, sched.pending())
	}

	sched.stop()
	sched.after(time.Millisecond, func() { fired++ })
	clk.Advance(time.Second)

	if fired != 1 {
		t.Fatalf("fired = %d after stop, want 1", fired)
	}
	if clk.Pending() != 0 {
		t.Fatalf("clock timers = %d, want 0", clk.Pending())
	}
}

func TestScheduler_Flush(t *testing.T) {
	clk := clocktest.NewFake(epoch)
	sched := newScheduler(clk)

	fired := 0
	sched.after(time.Second, func() { fired++ })
	sched.after(time.Minute, func() { fired++ })

	sched.flush()
	if fired != 2 {
		t.Fatalf("fired = %d, want 2", fired)
	}

	clk.Advance(time.Hour)
	if fired != 2 {
		t.Fatalf("flushed callbacks fired again: %d", fired)
	}
}
