// Package visual provides chart elements drawn in data space that are not
// series: highlighted sections and boxes.
package visual

import (
	"math"

	"dasa.cc/cartesian/axis"
	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/hit"
	"dasa.cc/cartesian/notify"
)

// Property names passed to change callbacks.
const (
	PropBounds  = "Bounds"
	PropAxes    = "Axes"
	PropVisible = "Visible"
	PropLabel   = "Label"
)

// Section highlights a band of data space. An unset edge extends to the
// draw margin.
type Section struct {
	notify.Properties

	x0, x1, y0, y1 *float64
	xAt, yAt       int
	label          string
	hidden         bool
}

// XBand returns a section spanning x0 to x1 on every y.
func XBand(x0, x1 float64) *Section { return &Section{x0: &x0, x1: &x1} }

// YBand returns a section spanning y0 to y1 on every x.
func YBand(y0, y1 float64) *Section { return &Section{y0: &y0, y1: &y1} }

func (s *Section) SetX(x0, x1 float64) {
	s.x0, s.x1 = &x0, &x1
	s.Notify(PropBounds)
}

func (s *Section) SetY(y0, y1 float64) {
	s.y0, s.y1 = &y0, &y1
	s.Notify(PropBounds)
}

// ClearX makes the section span every x.
func (s *Section) ClearX() {
	s.x0, s.x1 = nil, nil
	s.Notify(PropBounds)
}

// ClearY makes the section span every y.
func (s *Section) ClearY() {
	s.y0, s.y1 = nil, nil
	s.Notify(PropBounds)
}

func (s *Section) Label() string { return s.label }

func (s *Section) SetLabel(label string) {
	if s.label != label {
		s.label = label
		s.Notify(PropLabel)
	}
}

func (s *Section) Visible() bool { return !s.hidden }

func (s *Section) SetVisible(v bool) {
	if s.hidden == !v {
		return
	}
	s.hidden = !v
	s.Notify(PropVisible)
}

func (s *Section) ScalesXAt() int { return s.xAt }
func (s *Section) ScalesYAt() int { return s.yAt }

func (s *Section) SetAxes(x, y int) {
	if s.xAt == x && s.yAt == y {
		return
	}
	s.xAt, s.yAt = x, y
	s.Notify(PropAxes)
}

// Rect returns the pixel rectangle of the section clipped to the draw margin.
func (s *Section) Rect(ctx hit.Context) (geom.Rect, error) {
	sx, err := ctx.Scaler(axis.X, s.xAt)
	if err != nil {
		return geom.Rect{}, err
	}
	sy, err := ctx.Scaler(axis.Y, s.yAt)
	if err != nil {
		return geom.Rect{}, err
	}
	m := ctx.DrawMargin()
	x0, x1 := band(sx, s.x0, s.x1, m.Location.X, m.Max().X)
	y0, y1 := band(sy, s.y0, s.y1, m.Location.Y, m.Max().Y)
	return geom.RectOf(geom.Pt(x0, y0), geom.Pt(x1, y1)), nil
}

func band(s axis.Scaler, v0, v1 *float64, lo, hi float64) (float64, float64) {
	p0, p1 := lo, hi
	if v0 != nil {
		p0 = clamp(s.ToPixels(*v0), lo, hi)
	}
	if v1 != nil {
		p1 = clamp(s.ToPixels(*v1), lo, hi)
	}
	return p0, p1
}

func clamp(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }

// IsHitBy reports the section when p falls inside it.
func (s *Section) IsHitBy(ctx hit.Context, p geom.Point) []hit.Visual {
	if s.hidden {
		return nil
	}
	r, err := s.Rect(ctx)
	if err != nil || !r.Contains(p) {
		return nil
	}
	return []hit.Visual{s}
}
