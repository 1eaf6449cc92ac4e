// Package input drives a chart from golang.org/x/mobile events.
package input

import (
	"dasa.cc/cartesian/chart"
	"dasa.cc/cartesian/geom"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
)

// Target receives pointer, wheel and lifecycle calls; *chart.Chart is one.
type Target interface {
	Load(sz geom.Size)
	Resize(sz geom.Size)
	Unload()

	PointerDown(p geom.Point, b chart.Button, mods chart.Modifiers)
	PointerMove(p geom.Point)
	PointerUp(p geom.Point, b chart.Button)
	Wheel(p geom.Point, delta float64)
}

var _ Target = (*chart.Chart)(nil)

// Filter translates events for Target. Only the first touch sequence is
// tracked; further fingers are ignored until it ends.
type Filter struct {
	Target Target

	loaded bool
	held   chart.Modifiers

	touching bool
	sequence touch.Sequence
}

// Filter handles e and returns it unchanged so filters may be chained.
func (f *Filter) Filter(e interface{}) interface{} {
	switch e := e.(type) {
	case size.Event:
		sz := geom.Size{Width: float64(e.WidthPx), Height: float64(e.HeightPx)}
		if f.loaded {
			f.Target.Resize(sz)
		} else {
			f.Target.Load(sz)
			f.loaded = true
		}
	case lifecycle.Event:
		if e.Crosses(lifecycle.StageAlive) == lifecycle.CrossOff && f.loaded {
			f.Target.Unload()
			f.loaded = false
			f.touching = false
		}
	case key.Event:
		f.key(e)
	case mouse.Event:
		f.mouse(e)
	case touch.Event:
		f.touch(e)
	}
	return e
}

func (f *Filter) key(e key.Event) {
	var m chart.Modifiers
	switch e.Code {
	case key.CodeLeftShift, key.CodeRightShift:
		m = chart.Shift
	case key.CodeLeftControl, key.CodeRightControl:
		m = chart.Control
	case key.CodeLeftAlt, key.CodeRightAlt:
		m = chart.Alt
	case key.CodeLeftGUI, key.CodeRightGUI:
		m = chart.Meta
	default:
		return
	}
	switch e.Direction {
	case key.DirPress:
		f.held |= m
	case key.DirRelease:
		f.held &^= m
	}
}

func (f *Filter) mouse(e mouse.Event) {
	p := geom.Pt(float64(e.X), float64(e.Y))
	switch e.Button {
	case mouse.ButtonWheelUp, mouse.ButtonWheelDown:
		if e.Direction == mouse.DirStep || e.Direction == mouse.DirPress {
			delta := 1.0
			if e.Button == mouse.ButtonWheelDown {
				delta = -1
			}
			f.Target.Wheel(p, delta)
		}
		return
	case mouse.ButtonWheelLeft, mouse.ButtonWheelRight:
		return
	}
	switch e.Direction {
	case mouse.DirPress:
		f.Target.PointerDown(p, button(e.Button), modifiers(e.Modifiers)|f.held)
	case mouse.DirRelease:
		f.Target.PointerUp(p, button(e.Button))
	case mouse.DirNone:
		f.Target.PointerMove(p)
	}
}

func (f *Filter) touch(e touch.Event) {
	p := geom.Pt(float64(e.X), float64(e.Y))
	switch e.Type {
	case touch.TypeBegin:
		if f.touching {
			return
		}
		f.touching, f.sequence = true, e.Sequence
		f.Target.PointerDown(p, chart.Primary, f.held)
	case touch.TypeMove:
		if f.touching && e.Sequence == f.sequence {
			f.Target.PointerMove(p)
		}
	case touch.TypeEnd:
		if f.touching && e.Sequence == f.sequence {
			f.touching = false
			f.Target.PointerUp(p, chart.Primary)
		}
	}
}

func button(b mouse.Button) chart.Button {
	switch b {
	case mouse.ButtonRight:
		return chart.Secondary
	case mouse.ButtonMiddle:
		return chart.Middle
	default:
		return chart.Primary
	}
}

func modifiers(m key.Modifiers) chart.Modifiers {
	var x chart.Modifiers
	if m&key.ModShift != 0 {
		x |= chart.Shift
	}
	if m&key.ModControl != 0 {
		x |= chart.Control
	}
	if m&key.ModAlt != 0 {
		x |= chart.Alt
	}
	if m&key.ModMeta != 0 {
		x |= chart.Meta
	}
	return x
}
