package chart

import (
	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/zoom"
)

// Button identifies a pointer button.
type Button uint8

const (
	Primary Button = iota
	Secondary
	Middle
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// PointerDown starts a gesture. Presses with any modifier held are ignored.
func (c *Chart) PointerDown(p geom.Point, b Button, mods Modifiers) {
	if mods != 0 || c.core == nil {
		return
	}
	c.Batch(func() { c.core.InvokePointerDown(p, b == Secondary) })
}

func (c *Chart) PointerMove(p geom.Point) {
	if c.core == nil {
		return
	}
	c.Batch(func() { c.core.InvokePointerMove(p) })
}

func (c *Chart) PointerUp(p geom.Point, b Button) {
	if c.core == nil {
		return
	}
	c.Batch(func() { c.core.InvokePointerUp(p, b == Secondary) })
}

// Wheel zooms around p; a positive delta zooms in.
func (c *Chart) Wheel(p geom.Point, delta float64) {
	if delta == 0 || c.core == nil {
		return
	}
	dir := zoom.Out
	if delta > 0 {
		dir = zoom.In
	}
	c.Batch(func() { c.core.Zoom(p, dir) })
}
