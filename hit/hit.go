// Package hit finds the data points and visual elements under a pixel.
package hit

import (
	"math"

	"dasa.cc/cartesian/axis"
	"dasa.cc/cartesian/geom"
	"golang.org/x/exp/slices"
)

// Context resolves the scalers hit testing needs.
type Context interface {
	DrawMargin() geom.Rect
	Scaler(o axis.Orientation, index int) (axis.Scaler, error)
}

// ChartPoint is one data point found under a pixel.
type ChartPoint struct {
	Series Series
	Index  int
	X, Y   float64
	Pixel  geom.Point

	// Distance is in pixels, measured as the strategy compares points.
	Distance float64
}

// Series is a plottable data series.
type Series interface {
	ScalesXAt() int
	ScalesYAt() int
	PreferredStrategy() Strategy
	FindHitPoints(ctx Context, p geom.Point, s Strategy, purpose Purpose) []ChartPoint
}

// Values is the data of a series as Search reads it.
type Values interface {
	Len() int
	At(i int) (x, y float64)
	Radius(purpose Purpose) float64
}

// Visual is a chart element other than a series.
type Visual interface {
	// IsHitBy returns the visuals under p, the receiver or its descendants.
	IsHitBy(ctx Context, p geom.Point) []Visual
}

// Find returns the points of every series under p, in series order.
// Automatic resolves per series.
func Find(ctx Context, series []Series, p geom.Point, s Strategy, purpose Purpose) []ChartPoint {
	var pts []ChartPoint
	for _, sr := range series {
		if sr == nil {
			continue
		}
		st := s
		if st == Automatic {
			st = sr.PreferredStrategy()
		}
		if st == Automatic {
			st = NearestX
		}
		pts = append(pts, sr.FindHitPoints(ctx, p, st, purpose)...)
	}
	return pts
}

// FindVisuals returns every visual hit by p, without duplicates.
func FindVisuals(ctx Context, visuals []Visual, p geom.Point) []Visual {
	var hits []Visual
	for _, v := range visuals {
		if v == nil {
			continue
		}
		for _, h := range v.IsHitBy(ctx, p) {
			if !slices.Contains(hits, h) {
				hits = append(hits, h)
			}
		}
	}
	return hits
}

// Search implements the strategies over v, the values of s. Points with
// non-finite values are skipped. A series whose axes cannot be resolved has
// no hits.
func Search(ctx Context, s Series, v Values, p geom.Point, st Strategy, purpose Purpose) []ChartPoint {
	sx, err := ctx.Scaler(axis.X, s.ScalesXAt())
	if err != nil {
		return nil
	}
	sy, err := ctx.Scaler(axis.Y, s.ScalesYAt())
	if err != nil {
		return nil
	}

	var dist func(q geom.Point) float64
	switch st {
	case NearestX:
		dist = func(q geom.Point) float64 { return math.Abs(q.X - p.X) }
	case NearestY:
		dist = func(q geom.Point) float64 { return math.Abs(q.Y - p.Y) }
	default:
		dist = p.Dist
	}
	exact := st == ExactMatch || st == ExactMatchTakeClosest
	radius := v.Radius(purpose)

	var (
		pts  []ChartPoint
		best = -1
	)
	for i, n := 0, v.Len(); i < n; i++ {
		x, y := v.At(i)
		if !finite(x) || !finite(y) {
			continue
		}
		q := axis.ToPixels(sx, sy, geom.Pt(x, y))
		d := dist(q)
		if exact && d > radius {
			continue
		}
		cp := ChartPoint{Series: s, Index: i, X: x, Y: y, Pixel: q, Distance: d}
		if st == ExactMatch {
			pts = append(pts, cp)
			continue
		}
		if best < 0 || closer(cp, pts[best], p) {
			pts = append(pts[:0], cp)
			best = 0
		}
	}
	return pts
}

// closer orders by Distance, then plane distance to p, then index.
func closer(a, b ChartPoint, p geom.Point) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	da, db := a.Pixel.Dist(p), b.Pixel.Dist(p)
	if da != db {
		return da < db
	}
	return a.Index < b.Index
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
