package axis

import (
	"dasa.cc/cartesian/geom"
	"github.com/aclements/go-moremath/scale"
	"golang.org/x/image/math/f64"
)

// Scaler maps one axis' visible range onto its pixel extent of a draw margin
// and back. It is an immutable value, cheap to build once per frame.
//
// Screen Y grows downward, so Y scalers flip unless the axis is inverted;
// X scalers flip only when inverted.
type Scaler struct {
	lin    scale.Linear
	origin float64
	length float64
	flip   bool
	err    error
}

// NewScaler returns the scaler for a inside margin.
func NewScaler(margin geom.Rect, a *Axis) Scaler {
	return ScalerFor(margin, a.Orientation(), a.Visible(), a.Inverted())
}

// ScalerFor returns the scaler for range r drawn along orientation o of margin.
// Degenerate ranges are substituted per Normalize and reported by Err.
func ScalerFor(margin geom.Rect, o Orientation, r Range, inverted bool) Scaler {
	r, err := Normalize(r)
	s := Scaler{lin: scale.Linear{Min: r.Min, Max: r.Max}, err: err}
	switch o {
	case X:
		s.origin, s.length = margin.Location.X, margin.Size.Width
		s.flip = inverted
	default:
		s.origin, s.length = margin.Location.Y, margin.Size.Height
		s.flip = !inverted
	}
	if !(s.length > 0) {
		s.length = 0
	}
	return s
}

// Err returns the ErrDegenerateRange recovered from at construction, if any.
func (s Scaler) Err() error { return s.err }

// Range returns the data range mapped, after any degenerate substitution.
func (s Scaler) Range() Range { return Range{s.lin.Min, s.lin.Max} }

// Extent returns the pixel length mapped onto; zero for collapsed layouts.
func (s Scaler) Extent() float64 { return s.length }

// Collapsed reports whether the pixel extent is empty; every value then maps
// to the origin.
func (s Scaler) Collapsed() bool { return s.length == 0 }

// PixelsPerUnit is signed; negative when the scaler flips.
func (s Scaler) PixelsPerUnit() float64 {
	ppu := s.length / (s.lin.Max - s.lin.Min)
	if s.flip {
		return -ppu
	}
	return ppu
}

// ToPixels maps a data value to a pixel coordinate.
func (s Scaler) ToPixels(v float64) float64 {
	if s.length == 0 {
		return s.origin
	}
	t := s.lin.Map(v)
	if s.flip {
		t = 1 - t
	}
	return s.origin + t*s.length
}

// ToChartValues maps a pixel coordinate to a data value.
func (s Scaler) ToChartValues(p float64) float64 {
	if s.length == 0 {
		return s.lin.Min
	}
	t := (p - s.origin) / s.length
	if s.flip {
		t = 1 - t
	}
	return s.lin.Unmap(t)
}

// Ticks returns up to max major tick values inside the range.
func (s Scaler) Ticks(max int) []float64 {
	major, _ := s.lin.Ticks(scale.TickOptions{Max: max})
	return major
}

// Affine returns the data-to-pixel transform of the scaler pair as an
// affine matrix, for renderers that apply one matrix per frame.
func Affine(x, y Scaler) f64.Aff3 {
	sx, sy := x.PixelsPerUnit(), y.PixelsPerUnit()
	return f64.Aff3{
		sx, 0, x.ToPixels(0),
		0, sy, y.ToPixels(0),
	}
}

// InverseAffine is the pixel-to-data counterpart of Affine. Collapsed
// scalers map every pixel to their range minimum.
func InverseAffine(x, y Scaler) f64.Aff3 {
	var m f64.Aff3
	if sx := x.PixelsPerUnit(); sx != 0 {
		m[0], m[2] = 1/sx, x.ToChartValues(0)
	} else {
		m[2] = x.lin.Min
	}
	if sy := y.PixelsPerUnit(); sy != 0 {
		m[4], m[5] = 1/sy, y.ToChartValues(0)
	} else {
		m[5] = y.lin.Min
	}
	return m
}

// ToPixels maps a data point through the x and y scalers.
func ToPixels(x, y Scaler, p geom.Point) geom.Point {
	return geom.Pt(x.ToPixels(p.X), y.ToPixels(p.Y))
}

// ToChartValues maps a pixel point through the x and y scalers.
func ToChartValues(x, y Scaler, p geom.Point) geom.Point {
	return geom.Pt(x.ToChartValues(p.X), y.ToChartValues(p.Y))
}
