package zoom

import (
	"math"

	"dasa.cc/cartesian/axis"
	"dasa.cc/cartesian/geom"
)

const (
	// Step is the span change of one wheel notch at speed 1.
	Step = 0.25

	MinSpeed = 0.1
	MaxSpeed = 10

	// MinSection is the smallest selection, in pixels, ZoomToSection accepts
	// along a dimension.
	MinSection = 4
)

// Target is what gestures act on: the axes and the margin they are drawn in.
type Target interface {
	DrawMargin() geom.Rect
	XAxes() []*axis.Axis
	YAxes() []*axis.Axis
}

type gesture uint8

const (
	idle gesture = iota
	panning
	selecting
)

// Controller applies gestures to a Target per its Mode and Speed.
// Zero value has zoom disabled.
type Controller struct {
	Mode  Mode
	Speed float64

	state gesture
	start geom.Point
	last  geom.Point
}

// Factor returns the span multiplier of one zoom-out step; zoom-in divides.
func (c *Controller) Factor() float64 {
	speed := c.Speed
	switch {
	case speed == 0 || math.IsNaN(speed):
		speed = 1
	case speed < MinSpeed:
		speed = MinSpeed
	case speed > MaxSpeed:
		speed = MaxSpeed
	}
	return 1 + Step*speed
}

// Zoom scales the affected axes around pixel p so the data value under p
// stays under p. It reports whether any axis was considered.
func (c *Controller) Zoom(t Target, p geom.Point, dir Direction) bool {
	f := c.Factor()
	if dir == In {
		f = 1 / f
	}
	m := t.DrawMargin()
	var done bool
	if c.Mode.Has(ZoomX) {
		for _, a := range t.XAxes() {
			done = zoomAxis(m, a, p.X, f) || done
		}
	}
	if c.Mode.Has(ZoomY) {
		for _, a := range t.YAxes() {
			done = zoomAxis(m, a, p.Y, f) || done
		}
	}
	return done
}

func zoomAxis(m geom.Rect, a *axis.Axis, px, f float64) bool {
	s := axis.NewScaler(m, a)
	if s.Collapsed() {
		return false
	}
	r := s.Range()
	v := s.ToChartValues(px)
	u := (v - r.Min) / r.Span()
	span := clampSpan(a, r.Span()*f)
	min := v - u*span
	a.SetLimits(min, min+span)
	return true
}

// Pan shifts the affected axes by a pixel delta, keeping their spans.
func (c *Controller) Pan(t Target, delta geom.Point) bool {
	m := t.DrawMargin()
	var done bool
	if c.Mode.Has(PanX) && delta.X != 0 {
		for _, a := range t.XAxes() {
			done = panAxis(m, a, delta.X) || done
		}
	}
	if c.Mode.Has(PanY) && delta.Y != 0 {
		for _, a := range t.YAxes() {
			done = panAxis(m, a, delta.Y) || done
		}
	}
	return done
}

func panAxis(m geom.Rect, a *axis.Axis, d float64) bool {
	s := axis.NewScaler(m, a)
	if s.Collapsed() {
		return false
	}
	r := s.Range()
	shift := -d / s.PixelsPerUnit()
	if span := clampSpan(a, r.Span()); span != r.Span() {
		c := (r.Min + r.Max) / 2
		r = axis.Range{Min: c - span/2, Max: c + span/2}
	}
	a.SetLimits(r.Min+shift, r.Max+shift)
	return true
}

// ZoomToSection fits the affected axes to the pixel rectangle spanned by a
// and b. Dimensions thinner than MinSection are left alone.
func (c *Controller) ZoomToSection(t Target, a, b geom.Point) bool {
	sel := geom.RectOf(a, b)
	m := t.DrawMargin()
	var done bool
	if c.Mode.Has(ZoomX) && sel.Size.Width >= MinSection {
		for _, ax := range t.XAxes() {
			done = fitAxis(m, ax, sel.Location.X, sel.Max().X) || done
		}
	}
	if c.Mode.Has(ZoomY) && sel.Size.Height >= MinSection {
		for _, ax := range t.YAxes() {
			done = fitAxis(m, ax, sel.Location.Y, sel.Max().Y) || done
		}
	}
	return done
}

func fitAxis(m geom.Rect, a *axis.Axis, p0, p1 float64) bool {
	s := axis.NewScaler(m, a)
	if s.Collapsed() {
		return false
	}
	v0, v1 := s.ToChartValues(p0), s.ToChartValues(p1)
	if v0 > v1 {
		v0, v1 = v1, v0
	}
	if span := clampSpan(a, v1-v0); span != v1-v0 {
		c := (v0 + v1) / 2
		v0, v1 = c-span/2, c+span/2
	}
	a.SetLimits(v0, v1)
	return true
}

func clampSpan(a *axis.Axis, span float64) float64 {
	min, max := a.SpanLimits()
	if min > 0 && span < min {
		span = min
	}
	if max > 0 && span > max {
		span = max
	}
	return span
}

// Dragging reports whether a pan or section gesture is in progress.
func (c *Controller) Dragging() bool { return c.state != idle }

// Selection returns the pixel rectangle of an in-progress section gesture.
func (c *Controller) Selection() (geom.Rect, bool) {
	if c.state != selecting {
		return geom.Rect{}, false
	}
	return geom.RectOf(c.start, c.last), true
}

// Down starts a gesture: a primary pointer pans, an alternate pointer selects
// a section to zoom to. It reports whether a gesture started.
func (c *Controller) Down(p geom.Point, alternate bool) bool {
	c.state = idle
	switch {
	case alternate && c.Mode.Any(ZoomX|ZoomY):
		c.state = selecting
	case !alternate && c.Mode.Any(Pan):
		c.state = panning
	default:
		return false
	}
	c.start, c.last = p, p
	return true
}

// Move continues a gesture; panning applies the delta since the last event.
func (c *Controller) Move(t Target, p geom.Point) bool {
	switch c.state {
	case panning:
		d := p.Sub(c.last)
		c.last = p
		return c.Pan(t, d)
	case selecting:
		c.last = p
	}
	return false
}

// Up ends a gesture. A section gesture ends only with its own button.
func (c *Controller) Up(t Target, p geom.Point, alternate bool) bool {
	switch c.state {
	case panning:
		done := c.Move(t, p)
		c.state = idle
		return done
	case selecting:
		if !alternate {
			return false
		}
		c.state = idle
		return c.ZoomToSection(t, c.start, p)
	}
	return false
}

// Cancel drops any gesture in progress.
func (c *Controller) Cancel() { c.state = idle }
