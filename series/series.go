// Package series provides the XY data series plotted by a chart.
package series

import (
	"fmt"
	"math"

	"dasa.cc/cartesian/axis"
	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/hit"
	"dasa.cc/cartesian/notify"
	"github.com/aclements/go-moremath/stats"
	"golang.org/x/exp/slices"
)

// Property names passed to change callbacks.
const (
	PropName     = "Name"
	PropValues   = "Values"
	PropVisible  = "Visible"
	PropAxes     = "Axes"
	PropStrategy = "Strategy"
	PropRadius   = "Radius"
)

const (
	DefaultHoverRadius    = 12
	DefaultGeometryRadius = 4
)

// XY is a sequence of data points scaled on one X and one Y axis.
type XY struct {
	notify.Properties

	name     string
	values   []geom.Point
	hidden   bool
	xAt, yAt int
	strategy hit.Strategy

	hoverRadius, geometryRadius float64
}

// New returns a visible series on the first X and Y axes.
func New(name string, values ...geom.Point) *XY {
	return &XY{
		name:           name,
		values:         slices.Clone(values),
		hoverRadius:    DefaultHoverRadius,
		geometryRadius: DefaultGeometryRadius,
	}
}

// FromColumns pairs xs and ys; the longer column is truncated.
func FromColumns(name string, xs, ys []float64) *XY {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(xs[i], ys[i])
	}
	s := New(name)
	s.values = pts
	return s
}

func (s *XY) Name() string { return s.name }

func (s *XY) SetName(name string) {
	if s.name != name {
		s.name = name
		s.Notify(PropName)
	}
}

// Values returns a copy of the data points.
func (s *XY) Values() []geom.Point { return slices.Clone(s.values) }

func (s *XY) SetValues(values ...geom.Point) {
	s.values = slices.Clone(values)
	s.Notify(PropValues)
}

// Append adds data points to the end of the series.
func (s *XY) Append(values ...geom.Point) {
	if len(values) == 0 {
		return
	}
	s.values = append(s.values, values...)
	s.Notify(PropValues)
}

// SetAt replaces the data point at i.
func (s *XY) SetAt(i int, p geom.Point) {
	if s.values[i] == p {
		return
	}
	s.values[i] = p
	s.Notify(PropValues)
}

func (s *XY) Len() int { return len(s.values) }

func (s *XY) At(i int) (x, y float64) { return s.values[i].X, s.values[i].Y }

// Visible reports whether the series takes part in layout and hit testing.
func (s *XY) Visible() bool { return !s.hidden }

func (s *XY) SetVisible(v bool) {
	if s.hidden == !v {
		return
	}
	s.hidden = !v
	s.Notify(PropVisible)
}

func (s *XY) ScalesXAt() int { return s.xAt }
func (s *XY) ScalesYAt() int { return s.yAt }

// SetAxes selects the X and Y axes, by index, the series is scaled on.
func (s *XY) SetAxes(x, y int) {
	if s.xAt == x && s.yAt == y {
		return
	}
	s.xAt, s.yAt = x, y
	s.Notify(PropAxes)
}

func (s *XY) PreferredStrategy() hit.Strategy { return s.strategy }

func (s *XY) SetPreferredStrategy(st hit.Strategy) {
	if s.strategy != st {
		s.strategy = st
		s.Notify(PropStrategy)
	}
}

// Radius returns the pixel radius of a point's region for purpose.
func (s *XY) Radius(purpose hit.Purpose) float64 {
	if purpose == hit.Selection {
		return s.geometryRadius
	}
	return s.hoverRadius
}

func (s *XY) SetRadius(hover, geometry float64) {
	if s.hoverRadius == hover && s.geometryRadius == geometry {
		return
	}
	s.hoverRadius, s.geometryRadius = hover, geometry
	s.Notify(PropRadius)
}

func (s *XY) FindHitPoints(ctx hit.Context, p geom.Point, st hit.Strategy, purpose hit.Purpose) []hit.ChartPoint {
	if s.hidden {
		return nil
	}
	return hit.Search(ctx, s, s, p, st, purpose)
}

// Bounds returns the extent of the finite data points.
func (s *XY) Bounds() (x, y axis.Range, ok bool) {
	xs := make([]float64, 0, len(s.values))
	ys := make([]float64, 0, len(s.values))
	for _, p := range s.values {
		if finite(p.X) && finite(p.Y) {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}
	if len(xs) == 0 {
		return axis.Range{}, axis.Range{}, false
	}
	x.Min, x.Max = stats.Bounds(xs)
	y.Min, y.Max = stats.Bounds(ys)
	return x, y, true
}

func (s *XY) String() string {
	return fmt.Sprintf("%s(%d)", s.name, len(s.values))
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
