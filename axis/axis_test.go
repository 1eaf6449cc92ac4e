package axis

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"dasa.cc/cartesian/geom"
)

func near(a, b, scale float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, scale)
}

func margin(x, y, w, h float64) geom.Rect {
	return geom.Rect{Location: geom.Pt(x, y), Size: geom.Size{Width: w, Height: h}}
}

func TestScalerScenario(t *testing.T) {
	a := New(X)
	a.SetLimits(0, 1000)
	s := NewScaler(margin(0, 0, 500, 300), a)
	if have, want := s.ToPixels(500), 250.0; have != want {
		t.Fatalf("ToPixels(500): have %v, want %v", have, want)
	}
	if have, want := s.ToChartValues(250), 500.0; have != want {
		t.Fatalf("ToChartValues(250): have %v, want %v", have, want)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestScalerRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		min := (rnd.Float64() - 0.5) * math.Pow(10, float64(rnd.Intn(12)-4))
		span := rnd.Float64()*math.Pow(10, float64(rnd.Intn(12)-4)) + 1e-6
		r := Range{min, min + span}
		m := margin(rnd.Float64()*100, rnd.Float64()*100, 1+rnd.Float64()*2000, 1+rnd.Float64()*2000)
		for _, o := range []Orientation{X, Y} {
			for _, inv := range []bool{false, true} {
				s := ScalerFor(m, o, r, inv)
				v := r.Min + rnd.Float64()*span
				if have := s.ToChartValues(s.ToPixels(v)); !near(have, v, math.Max(math.Abs(v), span)) {
					t.Fatalf("%v %v inverted=%v: round trip of %v gave %v", r, o, inv, v, have)
				}
			}
		}
	}
}

func TestScalerMonotonic(t *testing.T) {
	m := margin(10, 20, 400, 300)
	r := Range{-5, 5}
	tests := []struct {
		o          Orientation
		inverted   bool
		increasing bool
	}{
		{X, false, true},
		{X, true, false},
		{Y, false, false},
		{Y, true, true},
	}
	for _, tt := range tests {
		s := ScalerFor(m, tt.o, r, tt.inverted)
		prev := s.ToPixels(r.Min)
		for v := r.Min + 0.25; v <= r.Max; v += 0.25 {
			p := s.ToPixels(v)
			if tt.increasing && !(p > prev) || !tt.increasing && !(p < prev) {
				t.Fatalf("%v inverted=%v not monotonic at %v: %v then %v", tt.o, tt.inverted, v, prev, p)
			}
			prev = p
		}
		if have := s.PixelsPerUnit() > 0; have != tt.increasing {
			t.Fatalf("%v inverted=%v: PixelsPerUnit sign %v", tt.o, tt.inverted, s.PixelsPerUnit())
		}
	}
}

func TestScalerYConvention(t *testing.T) {
	s := ScalerFor(margin(0, 50, 100, 200), Y, Range{0, 10}, false)
	if have, want := s.ToPixels(0), 250.0; have != want {
		t.Fatalf("bottom: have %v, want %v", have, want)
	}
	if have, want := s.ToPixels(10), 50.0; have != want {
		t.Fatalf("top: have %v, want %v", have, want)
	}
}

func TestScalerDegenerate(t *testing.T) {
	s := ScalerFor(margin(0, 0, 100, 100), X, Range{3, 3}, false)
	if !errors.Is(s.Err(), ErrDegenerateRange) {
		t.Fatalf("have %v, want ErrDegenerateRange", s.Err())
	}
	r := s.Range()
	if have, want := r.Span(), DegenerateSpan(3); math.Abs(have-want)/want > 1e-3 {
		t.Fatalf("substituted span: have %v, want %v", have, want)
	}
	if p := s.ToPixels(3); math.IsNaN(p) || math.IsInf(p, 0) || math.Abs(p-50) > 1e-3 {
		t.Fatalf("ToPixels of degenerate value: have %v, want 50", p)
	}

	s = ScalerFor(margin(0, 0, 100, 100), X, Range{math.NaN(), 1}, false)
	if !errors.Is(s.Err(), ErrDegenerateRange) || s.Range() != DefaultRange {
		t.Fatalf("NaN range: have %v %v", s.Range(), s.Err())
	}

	s = ScalerFor(margin(0, 0, 100, 100), X, Range{10, 0}, false)
	if s.Err() != nil || s.Range() != (Range{0, 10}) {
		t.Fatalf("reversed range: have %v %v", s.Range(), s.Err())
	}
}

func TestScalerCollapsed(t *testing.T) {
	s := ScalerFor(margin(7, 9, 0, 0), X, Range{0, 100}, false)
	if !s.Collapsed() {
		t.Fatal("zero width margin should collapse")
	}
	for _, v := range []float64{-1, 0, 50, 1e9} {
		if have := s.ToPixels(v); have != 7 {
			t.Fatalf("ToPixels(%v): have %v, want origin 7", v, have)
		}
	}
	if have := s.ToChartValues(123); have != 0 {
		t.Fatalf("ToChartValues: have %v, want range min", have)
	}
	y := ScalerFor(margin(7, 9, 0, 0), Y, Range{0, 100}, false)
	m := InverseAffine(s, y)
	if p := geom.Pt(40, 40).Apply(m); p != geom.Pt(0, 0) {
		t.Fatalf("collapsed inverse affine: have %v", p)
	}
}

func TestAffine(t *testing.T) {
	m := margin(10, 20, 300, 200)
	x := ScalerFor(m, X, Range{-3, 12}, false)
	y := ScalerFor(m, Y, Range{100, 400}, false)
	fwd, inv := Affine(x, y), InverseAffine(x, y)
	for _, p := range []geom.Point{{X: -3, Y: 100}, {X: 0, Y: 0}, {X: 4.5, Y: 250}, {X: 12, Y: 400}} {
		want := ToPixels(x, y, p)
		have := p.Apply(fwd)
		if !near(have.X, want.X, 300) || !near(have.Y, want.Y, 300) {
			t.Fatalf("Affine(%v): have %v, want %v", p, have, want)
		}
		back := have.Apply(inv)
		if !near(back.X, p.X, 12) || !near(back.Y, p.Y, 400) {
			t.Fatalf("InverseAffine(%v): have %v, want %v", have, back, p)
		}
	}
}

func TestTicks(t *testing.T) {
	s := ScalerFor(margin(0, 0, 100, 100), X, Range{0, 100}, false)
	ticks := s.Ticks(6)
	if len(ticks) == 0 || len(ticks) > 6 {
		t.Fatalf("have %v ticks, want 1..6", len(ticks))
	}
	for _, v := range ticks {
		if !s.Range().Contains(v) {
			t.Fatalf("tick %v outside %v", v, s.Range())
		}
	}
}

func TestAxisNotify(t *testing.T) {
	a := New(Y)
	var names []string
	a.OnChange(func(name string) { names = append(names, name) })

	a.SetLimits(0, 100)
	a.SetLimits(0, 100)
	a.SetLimits(100, 0)
	a.SetInverted(true)
	a.SetInverted(true)
	a.SetSpanLimits(1, 1000)
	a.SetDataBounds(3, 97)
	a.ClearLimits()
	a.ClearLimits()

	want := []string{PropLimits, PropInverted, PropSpan, PropLimits}
	if len(names) != len(want) {
		t.Fatalf("have %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("have %v, want %v", names, want)
		}
	}
}

func TestAxisVisible(t *testing.T) {
	a := New(X)
	if have := a.Visible(); have != DefaultRange {
		t.Fatalf("empty axis: have %v, want %v", have, DefaultRange)
	}
	a.SetDataBounds(3, 97)
	r := a.Visible()
	if !(r.Min <= 3 && r.Max >= 97) {
		t.Fatalf("niced data bounds %v do not cover [3, 97]", r)
	}
	a.SetLimits(10, 20)
	if have, want := a.Visible(), (Range{10, 20}); have != want {
		t.Fatalf("limited axis: have %v, want %v", have, want)
	}
	a.SetDataBounds(math.Inf(1), 0)
	if _, ok := a.DataBounds(); ok {
		t.Fatal("non-finite data bounds should clear")
	}
}

func BenchmarkScaler(b *testing.B) {
	m := margin(0, 0, 800, 600)
	for n := 0; n < b.N; n++ {
		s := ScalerFor(m, Y, Range{0, 1000}, false)
		_ = s.ToChartValues(s.ToPixels(float64(n % 1000)))
	}
}
