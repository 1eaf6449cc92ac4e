package ratio

import (
	"math"
	"testing"

	"dasa.cc/cartesian/axis"
	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/notify"
)

type surface struct {
	margin geom.Rect
	layout notify.List[geom.Rect]
}

func (s *surface) DrawMargin() geom.Rect { return s.margin }
func (s *surface) OnLayout(fn func(geom.Rect)) notify.Handle {
	return s.layout.Add(fn)
}
func (s *surface) RemoveLayoutCallback(h notify.Handle) bool { return s.layout.Remove(h) }

func (s *surface) resize(w, h float64) {
	s.margin.Size = geom.Size{Width: w, Height: h}
	s.layout.Fire(s.margin)
}

func newSurface(w, h float64) *surface {
	return &surface{margin: geom.Rect{Size: geom.Size{Width: w, Height: h}}}
}

func approx(r axis.Range, min, max float64) bool {
	return math.Abs(r.Min-min) < 1e-9 && math.Abs(r.Max-max) < 1e-9
}

func TestSynchronizer(t *testing.T) {
	sa, sb := newSurface(400, 100), newSurface(800, 100)
	a, b := axis.New(axis.X), axis.New(axis.X)
	a.SetLimits(0, 100)
	b.SetLimits(0, 1)

	s := New(Pair{Member{a, sa}, Member{b, sb}})
	if s.Enabled() {
		t.Fatal("new synchronizer is enabled")
	}
	s.Enable()
	if have := b.Visible(); !approx(have, 0, 200) {
		t.Fatalf("have %v, want [0, 200]", have)
	}

	a.SetLimits(50, 150)
	if have := b.Visible(); !approx(have, 0, 200) {
		t.Fatalf("after shifting driver: have %v, want [0, 200]", have)
	}
	a.SetLimits(0, 50)
	if have := b.Visible(); !approx(have, 0, 100) {
		t.Fatalf("after zooming driver: have %v, want [0, 100]", have)
	}

	sb.resize(1600, 100)
	if have := b.Visible(); !approx(have, 0, 200) {
		t.Fatalf("after resizing dependent: have %v, want [0, 200]", have)
	}

	s.Disable()
	if s.Enabled() {
		t.Fatal("disabled synchronizer is enabled")
	}
	if a.Observers() != 0 || sa.layout.Len() != 0 || sb.layout.Len() != 0 {
		t.Fatalf("subscriptions left: %v %v %v", a.Observers(), sa.layout.Len(), sb.layout.Len())
	}
	a.SetLimits(0, 1000)
	if have := b.Visible(); !approx(have, 0, 200) {
		t.Fatalf("after disable: have %v, want [0, 200]", have)
	}
}

func TestSynchronizerAcrossOrientations(t *testing.T) {
	sf := newSurface(500, 250)
	x, y := axis.New(axis.X), axis.New(axis.Y)
	x.SetLimits(-10, 10)
	y.SetLimits(3, 4)
	s := New(Pair{Member{x, sf}, Member{y, sf}})
	s.Enable()
	defer s.Disable()
	if have := y.Visible(); !approx(have, 3, 13) {
		t.Fatalf("have %v, want [3, 13]", have)
	}
	if sf.layout.Len() != 1 {
		t.Fatalf("shared surface subscribed %v times, want 1", sf.layout.Len())
	}
}

func TestSynchronizerReentrancy(t *testing.T) {
	sf := newSurface(100, 100)
	a, b := axis.New(axis.X), axis.New(axis.Y)
	a.SetLimits(0, 10)
	// each axis drives the other; a pass must terminate.
	s := New(
		Pair{Member{a, sf}, Member{b, sf}},
		Pair{Member{b, sf}, Member{a, sf}},
	)
	var n int
	b.OnChange(func(string) { n++ })
	s.Enable()
	if n > 1 {
		t.Fatalf("dependent notified %v times, want at most 1", n)
	}
	if have := b.Visible(); !approx(have, 0, 10) {
		t.Fatalf("have %v, want [0, 10]", have)
	}
}

func TestSynchronizerCollapsed(t *testing.T) {
	sa, sb := newSurface(0, 0), newSurface(800, 100)
	a, b := axis.New(axis.X), axis.New(axis.X)
	b.SetLimits(0, 1)
	s := New(Pair{Member{a, sa}, Member{b, sb}})
	s.Enable()
	defer s.Disable()
	if have := b.Visible(); !approx(have, 0, 1) {
		t.Fatalf("collapsed driver changed dependent to %v", have)
	}
}
