// Package geom provides the pixel-space value types shared by scalers,
// hit testing and the chart view.
package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Point is a location in either pixel or data space; the caller decides which.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{x, y} }

func (p Point) Add(q Point) Point    { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point    { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(k float64) Point  { return Point{p.X * k, p.Y * k} }
func (p Point) Eq(q Point) bool      { return p == q }
func (p Point) Vec2() f64.Vec2       { return f64.Vec2{p.X, p.Y} }
func FromVec2(v f64.Vec2) Point      { return Point{v[0], v[1]} }
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }
func (p Point) String() string       { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }
func (p Point) Apply(m f64.Aff3) Point {
	return Point{m[0]*p.X + m[1]*p.Y + m[2], m[3]*p.X + m[4]*p.Y + m[5]}
}

// Size is a width and height in pixels.
type Size struct{ Width, Height float64 }

// Empty reports whether either dimension is not positive.
func (s Size) Empty() bool { return !(s.Width > 0 && s.Height > 0) }

func (s Size) String() string { return fmt.Sprintf("%gx%g", s.Width, s.Height) }

// Insets are distances from each edge of an enclosing rectangle.
type Insets struct{ Left, Top, Right, Bottom float64 }

// Rect is an axis aligned rectangle given by its top-left location and size.
// Screen convention: Y grows downward.
type Rect struct {
	Location Point
	Size     Size
}

// RectOf returns the rectangle spanning a and b in any corner order.
func RectOf(a, b Point) Rect {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{Point{x0, y0}, Size{x1 - x0, y1 - y0}}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{r.Location.X + r.Size.Width, r.Location.Y + r.Size.Height}
}

func (r Rect) Center() Point {
	return Point{r.Location.X + r.Size.Width/2, r.Location.Y + r.Size.Height/2}
}

// Contains reports whether p lies inside r, edges inclusive.
func (r Rect) Contains(p Point) bool {
	m := r.Max()
	return p.X >= r.Location.X && p.X <= m.X && p.Y >= r.Location.Y && p.Y <= m.Y
}

// Inset shrinks r by in; dimensions never go negative.
func (r Rect) Inset(in Insets) Rect {
	r.Location.X += in.Left
	r.Location.Y += in.Top
	r.Size.Width = math.Max(0, r.Size.Width-in.Left-in.Right)
	r.Size.Height = math.Max(0, r.Size.Height-in.Top-in.Bottom)
	return r
}

func (r Rect) String() string { return fmt.Sprintf("%v+%v", r.Location, r.Size) }
