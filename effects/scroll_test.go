package effects

import (
	"bytes"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/adamwoolhether/sitefx/dom"
	"github.com/adamwoolhether/sitefx/dom/domtest"
)

func TestSmoothScroll(t *testing.T) {
	f := newFixture(t)

	target := domtest.NewElement("section")
	toAbout := domtest.NewElement("a").SetAttr("href", "#about")
	toTop := domtest.NewElement("a").SetAttr("href", "#")
	toMissing := domtest.NewElement("a").SetAttr("href", "#missing")

	f.doc.Register(SelectorAnchors, toAbout, toTop, toMissing)
	f.doc.Register("#about", target)

	off, err := SmoothScroll(f.host)
	if err != nil {
		t.Fatal(err)
	}

	prevented := 0
	click := func(a *domtest.Element) {
		a.Dispatch(dom.Event{Type: "click", Prevent: func() { prevented++ }})
	}

	click(toAbout)
	click(toTop)
	click(toMissing)

	if prevented != 3 {
		t.Fatalf("prevented = %d, want 3", prevented)
	}
	if got := target.Scrolls(); !slices.Equal(got, []bool{true}) {
		t.Fatalf("scrolls = %v, want one smooth scroll", got)
	}

	off()
	if n := toAbout.TotalListeners(); n != 0 {
		t.Fatalf("listeners after teardown = %d, want 0", n)
	}
}

func TestScrollSpy(t *testing.T) {
	f := newFixture(t)

	home := domtest.NewElement("section").SetOffsetTop(0)
	home.SetID("home")
	about := domtest.NewElement("section").SetOffsetTop(500)
	about.SetID("about")
	gallery := domtest.NewElement("section").SetOffsetTop(1200)
	gallery.SetID("gallery")

	links := map[string]*domtest.Element{
		"home":    domtest.NewElement("a").SetAttr("href", "#home"),
		"about":   domtest.NewElement("a").SetAttr("href", "#about"),
		"gallery": domtest.NewElement("a").SetAttr("href", "#gallery"),
	}

	f.doc.Register(SelectorSections, home, about, gallery)
	f.doc.Register(SelectorNavLinks, links["home"], links["about"], links["gallery"])

	off, err := ScrollSpy(f.host, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer off()

	testCases := []struct {
		scrollY float64
		active  string
	}{
		{scrollY: 0, active: "home"},
		{scrollY: 399, active: "home"},
		{scrollY: 400, active: "about"},
		{scrollY: 1099, active: "about"},
		{scrollY: 1100, active: "gallery"},
		{scrollY: 50, active: "home"},
	}

	for _, tc := range testCases {
		f.win.ScrollTo(tc.scrollY)

		for name, link := range links {
			want := name == tc.active
			if got := link.HasClass(ClassActive); got != want {
				t.Fatalf("scrollY=%v link %s active = %v, want %v", tc.scrollY, name, got, want)
			}
		}
	}
}

func TestParallax(t *testing.T) {
	f := newFixture(t)

	carousel := domtest.NewElement("div")
	f.doc.Register(SelectorCarousel, carousel)

	off, err := Parallax(f.host, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		scrollY float64
		exp     string
	}{
		{scrollY: 100, exp: "translateY(-50px)"},
		{scrollY: 33, exp: "translateY(-16.5px)"},
		{scrollY: 0, exp: "translateY(0px)"},
	}

	for _, tc := range testCases {
		f.win.ScrollTo(tc.scrollY)
		if got := carousel.Style("transform"); got != tc.exp {
			t.Fatalf("scrollY=%v transform = %q, want %q", tc.scrollY, got, tc.exp)
		}
	}

	off()
	f.win.ScrollTo(400)
	if got := carousel.Style("transform"); got != "translateY(0px)" {
		t.Fatalf("transform changed after teardown: %q", got)
	}
}

func TestParallax_NoCarousel(t *testing.T) {
	f := newFixture(t)

	off, err := Parallax(f.host, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer off()

	f.win.ScrollTo(100)
}

func TestScrollThrottle(t *testing.T) {
	f := newFixture(t)

	var seen []float64
	off, err := ScrollThrottle(f.host, DefaultConfig(), func(dom.Event) {
		seen = append(seen, f.win.ScrollY())
	})
	if err != nil {
		t.Fatal(err)
	}
	defer off()

	f.win.ScrollTo(10)
	f.clk.Advance(5 * time.Millisecond)
	f.win.ScrollTo(20)
	f.clk.Advance(5 * time.Millisecond)
	f.win.ScrollTo(30)

	if want := []float64{10}; !slices.Equal(seen, want) {
		t.Fatalf("handled = %v, want %v", seen, want)
	}

	f.clk.Advance(6 * time.Millisecond)
	if want := []float64{10, 30}; !slices.Equal(seen, want) {
		t.Fatalf("handled = %v, want %v", seen, want)
	}

	f.clk.Advance(time.Second)
	if len(seen) != 2 {
		t.Fatalf("handled = %v, want no further calls", seen)
	}
}

func TestScrollThrottle_TeardownDropsPending(t *testing.T) {
	f := newFixture(t)

	calls := 0
	off, err := ScrollThrottle(f.host, DefaultConfig(), func(dom.Event) { calls++ })
	if err != nil {
		t.Fatal(err)
	}

	f.win.ScrollTo(10)
	f.win.ScrollTo(20)
	off()
	f.clk.Advance(time.Second)

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if n := f.win.Listeners("scroll"); n != 0 {
		t.Fatalf("scroll listeners = %d, want 0", n)
	}
}

func TestScrollThrottle_SampledLog(t *testing.T) {
	testCases := []struct {
		name  string
		every time.Duration
		exp   int
	}{
		{name: "Sampled by host clock", every: 30 * time.Millisecond, exp: 3},
		{name: "Zero logs every execution", every: 0, exp: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			var buf bytes.Buffer
			f.host.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			cfg := DefaultConfig()
			cfg.ScrollLogEvery = tc.every

			off, err := ScrollThrottle(f.host, cfg, nil)
			if err != nil {
				t.Fatal(err)
			}
			defer off()

			// Six immediate executions, 20ms apart on the fake clock.
			for i := range 6 {
				f.win.ScrollTo(float64(i * 100))
				f.clk.Advance(20 * time.Millisecond)
			}

			if n := strings.Count(buf.String(), "scroll handled efficiently"); n != tc.exp {
				t.Fatalf("log lines = %d, want %d: %s", n, tc.exp, buf.String())
			}
		})
	}
}

func TestScrollThrottle_InvalidInterval(t *testing.T) {
	f := newFixture(t)

	cfg := DefaultConfig()
	cfg.ScrollInterval = -time.Millisecond

	if _, err := ScrollThrottle(f.host, cfg, nil); err == nil {
		t.Fatal("exp error for negative interval")
	}
}

func TestPx(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0px"},
		{in: math.Copysign(0, -1), want: "0px"},
		{in: 12, want: "12px"},
		{in: -16.5, want: "-16.5px"},
	}

	for _, tc := range tests {
		if got := px(tc.in); got != tc.want {
			t.Fatalf("px(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
