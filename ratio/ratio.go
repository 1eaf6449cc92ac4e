// Package ratio keeps the data-per-pixel ratio of dependent axes equal to
// that of a driver axis.
package ratio

import (
	"dasa.cc/cartesian/axis"
	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/notify"
)

// Surface is where an axis is drawn.
type Surface interface {
	DrawMargin() geom.Rect
	OnLayout(fn func(margin geom.Rect)) notify.Handle
	RemoveLayoutCallback(h notify.Handle) bool
}

// Member is an axis on its surface.
type Member struct {
	Axis    *axis.Axis
	Surface Surface
}

func (m Member) scaler() axis.Scaler { return axis.NewScaler(m.Surface.DrawMargin(), m.Axis) }

// Pair ties a dependent to its driver.
type Pair struct {
	Driver, Dependent Member
}

type subscription struct {
	release func() bool
}

// Synchronizer enforces
//
//	driverSpan/driverExtent == dependentSpan/dependentExtent
//
// for every pair by moving the dependent's maximum. The dependent's minimum
// is kept.
type Synchronizer struct {
	pairs []Pair
	subs  []subscription
	busy  bool
}

// New returns a disabled Synchronizer for pairs.
func New(pairs ...Pair) *Synchronizer {
	return &Synchronizer{pairs: pairs}
}

func (s *Synchronizer) Enabled() bool { return s.subs != nil }

// Pairs returns the pairs kept in ratio.
func (s *Synchronizer) Pairs() []Pair { return s.pairs }

// Enable subscribes to each driver's property changes and each surface's
// layout event, then runs one pass. Enabling twice is a no-op.
func (s *Synchronizer) Enable() {
	if s.Enabled() {
		return
	}
	s.subs = []subscription{}
	drivers := make(map[*axis.Axis]bool)
	surfaces := make(map[Surface]bool)
	for _, p := range s.pairs {
		if a := p.Driver.Axis; !drivers[a] {
			drivers[a] = true
			h := a.OnChange(func(string) { s.Sync() })
			s.subs = append(s.subs, subscription{func() bool { return a.RemoveCallback(h) }})
		}
		for _, sf := range []Surface{p.Driver.Surface, p.Dependent.Surface} {
			if surfaces[sf] {
				continue
			}
			surfaces[sf] = true
			sf := sf
			h := sf.OnLayout(func(geom.Rect) { s.Sync() })
			s.subs = append(s.subs, subscription{func() bool { return sf.RemoveLayoutCallback(h) }})
		}
	}
	s.Sync()
}

// Disable drops every subscription. Axes keep their last limits.
func (s *Synchronizer) Disable() {
	for _, sub := range s.subs {
		sub.release()
	}
	s.subs = nil
}

// Sync runs one propagation pass. Changes it causes do not trigger
// another pass.
func (s *Synchronizer) Sync() {
	if s.busy {
		return
	}
	s.busy = true
	defer func() { s.busy = false }()
	for _, p := range s.pairs {
		match(p.Driver, p.Dependent)
	}
}

func match(driver, dependent Member) {
	ds, ps := driver.scaler(), dependent.scaler()
	if ds.Collapsed() || ps.Collapsed() {
		return
	}
	unitsPerPixel := ds.Range().Span() / ds.Extent()
	min := ps.Range().Min
	dependent.Axis.SetLimits(min, min+unitsPerPixel*ps.Extent())
}
