package clocktest_test

import (
	"slices"
	"testing"
	"time"

	"github.com/adamwoolhether/sitefx/clock/clocktest"
)

func TestFake_FiresInDeadlineOrder(t *testing.T) {
	start := time.Unix(0, 0)
	fake := clocktest.NewFake(start)

	var got []string
	fake.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	fake.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	fake.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	fake.Advance(20 * time.Millisecond)
	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Fatalf("fired = %v, want %v", got, want)
	}
	if now := fake.Now().Sub(start); now != 20*time.Millisecond {
		t.Fatalf("now = %v, want 20ms", now)
	}

	fake.Advance(10 * time.Millisecond)
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Fatalf("fired = %v, want %v", got, want)
	}
}

func TestFake_NowDuringCallback(t *testing.T) {
	start := time.Unix(0, 0)
	fake := clocktest.NewFake(start)

	var at time.Duration
	fake.AfterFunc(7*time.Millisecond, func() { at = fake.Now().Sub(start) })
	fake.Advance(50 * time.Millisecond)

	if at != 7*time.Millisecond {
		t.Fatalf("callback saw now = %v, want 7ms", at)
	}
}

func TestFake_Stop(t *testing.T) {
	fake := clocktest.NewFake(time.Unix(0, 0))

	fired := false
	tm := fake.AfterFunc(time.Millisecond, func() { fired = true })

	if !tm.Stop() {
		t.Fatal("first Stop should report true")
	}
	if tm.Stop() {
		t.Fatal("second Stop should report false")
	}

	fake.Advance(time.Second)
	if fired {
		t.Fatal("stopped timer fired")
	}
	if fake.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", fake.Pending())
	}
}

func TestFake_ChainedTimers(t *testing.T) {
	fake := clocktest.NewFake(time.Unix(0, 0))

	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 5 {
			fake.AfterFunc(10*time.Millisecond, tick)
		}
	}
	fake.AfterFunc(0, tick)

	fake.Advance(25 * time.Millisecond)
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}

	fake.Advance(time.Second)
	if count != 5 {
		t.Fatalf("count = %d, want 5", count)
	}
}

func TestFake_AdvanceFromCallback(t *testing.T) {
	start := time.Unix(0, 0)
	fake := clocktest.NewFake(start)

	fake.AfterFunc(10*time.Millisecond, func() {
		fake.Advance(4 * time.Millisecond)
	})

	fake.Advance(10 * time.Millisecond)
	if got := fake.Now().Sub(start); got != 14*time.Millisecond {
		t.Fatalf("now = %v, want 14ms", got)
	}
}
