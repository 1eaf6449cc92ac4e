package geom

import (
	"testing"

	"golang.org/x/image/math/f64"
)

func TestRectOf(t *testing.T) {
	r := RectOf(Pt(10, 40), Pt(2, 4))
	if want := (Rect{Pt(2, 4), Size{8, 36}}); r != want {
		t.Fatalf("have %v, want %v", r, want)
	}
	if !r.Contains(Pt(2, 4)) || !r.Contains(Pt(10, 40)) || !r.Contains(r.Center()) {
		t.Fatalf("%v should contain its corners and center", r)
	}
	if r.Contains(Pt(11, 5)) {
		t.Fatalf("%v should not contain (11, 5)", r)
	}
}

func TestInset(t *testing.T) {
	r := Rect{Size: Size{100, 50}}.Inset(Insets{Left: 10, Top: 5, Right: 20, Bottom: 5})
	if want := (Rect{Pt(10, 5), Size{70, 40}}); r != want {
		t.Fatalf("have %v, want %v", r, want)
	}
	r = r.Inset(Insets{Left: 100, Top: 100})
	if !r.Size.Empty() {
		t.Fatalf("have %v, want collapsed size", r.Size)
	}
}

func TestApply(t *testing.T) {
	m := f64.Aff3{2, 0, 1, 0, -1, 10}
	if have, want := Pt(3, 4).Apply(m), Pt(7, 6); have != want {
		t.Fatalf("have %v, want %v", have, want)
	}
	if have := FromVec2(Pt(1, 2).Vec2()); have != Pt(1, 2) {
		t.Fatalf("have %v, want (1, 2)", have)
	}
}
