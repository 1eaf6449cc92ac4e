// Package axis provides chart axes and the scalers mapping them to pixels.
package axis

import (
	"errors"
	"fmt"
	"math"

	"dasa.cc/cartesian/notify"
	"github.com/aclements/go-moremath/scale"
)

var (
	// ErrDegenerateRange is reported for ranges with no usable width; scalers
	// recover from it by substituting DegenerateSpan.
	ErrDegenerateRange = errors.New("degenerate axis range")

	// ErrIndexOutOfRange is wrapped by errors for axis indexes beyond the
	// current axis list.
	ErrIndexOutOfRange = errors.New("axis index out of range")
)

// Orientation of an axis.
type Orientation uint8

const (
	X Orientation = iota
	Y
)

func (o Orientation) String() string {
	switch o {
	case X:
		return "X"
	case Y:
		return "Y"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Range is a closed numeric interval.
type Range struct{ Min, Max float64 }

func (r Range) Span() float64 { return r.Max - r.Min }

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

func (r Range) String() string { return fmt.Sprintf("[%g, %g]", r.Min, r.Max) }

// DefaultRange is visible on an axis with neither limits nor data.
var DefaultRange = Range{0, 10}

// Property names passed to change callbacks.
const (
	PropLimits    = "Limits"
	PropSpan      = "Span"
	PropInverted  = "Inverted"
	PropName      = "Name"
	PropTickCount = "TickCount"
)

// Axis is one dimension of a chart. Limits, when set, fix the visible range;
// otherwise the range follows the data bounds written by the chart engine.
// Every setter notifies observers, and only when the value actually changes.
type Axis struct {
	notify.Properties

	orientation Orientation
	name        string
	inverted    bool

	limited bool
	limits  Range

	minSpan, maxSpan float64
	ticks            int

	data    Range
	hasData bool
}

// New returns an auto-fitting axis.
func New(o Orientation) *Axis { return &Axis{orientation: o, ticks: 10} }

func (a *Axis) Orientation() Orientation { return a.orientation }

func (a *Axis) Name() string { return a.name }

func (a *Axis) SetName(name string) {
	if a.name != name {
		a.name = name
		a.Notify(PropName)
	}
}

// Inverted reports whether values grow against the screen convention for the
// orientation: right-to-left for X, top-to-bottom for Y.
func (a *Axis) Inverted() bool { return a.inverted }

func (a *Axis) SetInverted(v bool) {
	if a.inverted != v {
		a.inverted = v
		a.Notify(PropInverted)
	}
}

// Limits returns the fixed visible range, if any.
func (a *Axis) Limits() (Range, bool) { return a.limits, a.limited }

// SetLimits fixes the visible range; min and max are swapped if reversed.
func (a *Axis) SetLimits(min, max float64) {
	if min > max {
		min, max = max, min
	}
	r := Range{min, max}
	if a.limited && a.limits == r {
		return
	}
	a.limits, a.limited = r, true
	a.Notify(PropLimits)
}

// ClearLimits returns the axis to auto fitting.
func (a *Axis) ClearLimits() {
	if !a.limited {
		return
	}
	a.limits, a.limited = Range{}, false
	a.Notify(PropLimits)
}

// SpanLimits returns the smallest and largest visible span zoom gestures may
// produce; zero means unbounded.
func (a *Axis) SpanLimits() (min, max float64) { return a.minSpan, a.maxSpan }

func (a *Axis) SetSpanLimits(min, max float64) {
	if a.minSpan == min && a.maxSpan == max {
		return
	}
	a.minSpan, a.maxSpan = math.Max(0, min), math.Max(0, max)
	a.Notify(PropSpan)
}

// TickCount is the maximum number of major ticks used when niceing data bounds.
func (a *Axis) TickCount() int { return a.ticks }

func (a *Axis) SetTickCount(n int) {
	if a.ticks != n {
		a.ticks = n
		a.Notify(PropTickCount)
	}
}

// DataBounds returns the niced bounds of the data scaled on this axis.
func (a *Axis) DataBounds() (Range, bool) { return a.data, a.hasData }

// SetDataBounds records the raw data extent, expanded to nice tick values.
// It is written by the chart engine during layout and does not notify.
func (a *Axis) SetDataBounds(min, max float64) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		a.ClearDataBounds()
		return
	}
	if min > max {
		min, max = max, min
	}
	ls := scale.Linear{Min: min, Max: max}
	if min != max && a.ticks > 0 {
		ls.Nice(scale.TickOptions{Max: a.ticks})
	}
	a.data, a.hasData = Range{ls.Min, ls.Max}, true
}

func (a *Axis) ClearDataBounds() { a.data, a.hasData = Range{}, false }

// Visible returns the range the axis currently shows: its limits, else its
// data bounds, else DefaultRange.
func (a *Axis) Visible() Range {
	switch {
	case a.limited:
		return a.limits
	case a.hasData:
		return a.data
	default:
		return DefaultRange
	}
}

func (a *Axis) String() string {
	name := a.name
	if name == "" {
		name = a.orientation.String()
	}
	return fmt.Sprintf("%s%v", name, a.Visible())
}

// CheckRange returns ErrDegenerateRange if r cannot be scaled.
func CheckRange(r Range) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%v: %w", r, ErrDegenerateRange)
	}
	if r.Min == r.Max {
		return fmt.Errorf("%v: %w", r, ErrDegenerateRange)
	}
	return nil
}

// DegenerateSpan returns the span substituted for a zero-width range at v.
func DegenerateSpan(v float64) float64 { return math.Max(math.Abs(v), 1) * 1e-9 }

// Normalize returns r ordered and made scalable, and the error describing
// any substitution made. Zero-width ranges widen by DegenerateSpan around
// their value; non-finite ranges become DefaultRange.
func Normalize(r Range) (Range, error) {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	err := CheckRange(r)
	switch {
	case err == nil:
	case r.Min == r.Max:
		h := DegenerateSpan(r.Min) / 2
		r = Range{r.Min - h, r.Max + h}
	default:
		r = DefaultRange
	}
	return r, err
}
