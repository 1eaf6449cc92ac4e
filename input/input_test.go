package input

import (
	"fmt"
	"strings"
	"testing"

	"dasa.cc/cartesian/axis"
	"dasa.cc/cartesian/chart"
	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/zoom"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
)

// recorder logs calls as short strings.
type recorder []string

func (r *recorder) add(format string, args ...interface{}) {
	*r = append(*r, fmt.Sprintf(format, args...))
}

func (r *recorder) Load(sz geom.Size)   { r.add("load %v", sz) }
func (r *recorder) Resize(sz geom.Size) { r.add("resize %v", sz) }
func (r *recorder) Unload()             { r.add("unload") }
func (r *recorder) PointerDown(p geom.Point, b chart.Button, mods chart.Modifiers) {
	r.add("down %v %v %v", p, b, mods)
}
func (r *recorder) PointerMove(p geom.Point)               { r.add("move %v", p) }
func (r *recorder) PointerUp(p geom.Point, b chart.Button) { r.add("up %v %v", p, b) }
func (r *recorder) Wheel(p geom.Point, delta float64)      { r.add("wheel %v %v", p, delta) }

func run(events ...interface{}) []string {
	var r recorder
	f := &Filter{Target: &r}
	for _, e := range events {
		if have := f.Filter(e); have != e {
			panic(fmt.Sprintf("filter changed %v to %v", e, have))
		}
	}
	return r
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		events []interface{}
		want   []string
	}{
		{
			"lifecycle",
			[]interface{}{
				size.Event{WidthPx: 400, HeightPx: 300},
				size.Event{WidthPx: 200, HeightPx: 100},
				lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead},
				size.Event{WidthPx: 10, HeightPx: 10},
			},
			[]string{"load 400x300", "resize 200x100", "unload", "load 10x10"},
		},
		{
			"mouse",
			[]interface{}{
				mouse.Event{X: 1, Y: 2, Button: mouse.ButtonLeft, Direction: mouse.DirPress},
				mouse.Event{X: 3, Y: 4, Direction: mouse.DirNone},
				mouse.Event{X: 5, Y: 6, Button: mouse.ButtonLeft, Direction: mouse.DirRelease},
				mouse.Event{X: 7, Y: 8, Button: mouse.ButtonRight, Direction: mouse.DirPress, Modifiers: key.ModShift | key.ModControl},
			},
			[]string{"down (1, 2) 0 0", "move (3, 4)", "up (5, 6) 0", "down (7, 8) 1 3"},
		},
		{
			"wheel",
			[]interface{}{
				mouse.Event{X: 1, Y: 1, Button: mouse.ButtonWheelUp, Direction: mouse.DirStep},
				mouse.Event{X: 1, Y: 1, Button: mouse.ButtonWheelDown, Direction: mouse.DirStep},
				mouse.Event{X: 1, Y: 1, Button: mouse.ButtonWheelDown, Direction: mouse.DirRelease},
				mouse.Event{X: 1, Y: 1, Button: mouse.ButtonWheelLeft, Direction: mouse.DirStep},
			},
			[]string{"wheel (1, 1) 1", "wheel (1, 1) -1"},
		},
		{
			"touch",
			[]interface{}{
				touch.Event{X: 1, Y: 1, Sequence: 1, Type: touch.TypeBegin},
				touch.Event{X: 9, Y: 9, Sequence: 2, Type: touch.TypeBegin},
				touch.Event{X: 2, Y: 2, Sequence: 1, Type: touch.TypeMove},
				touch.Event{X: 8, Y: 8, Sequence: 2, Type: touch.TypeMove},
				touch.Event{X: 7, Y: 7, Sequence: 2, Type: touch.TypeEnd},
				touch.Event{X: 3, Y: 3, Sequence: 1, Type: touch.TypeEnd},
			},
			[]string{"down (1, 1) 0 0", "move (2, 2)", "up (3, 3) 0"},
		},
		{
			"held keys",
			[]interface{}{
				key.Event{Code: key.CodeLeftAlt, Direction: key.DirPress},
				touch.Event{X: 1, Y: 1, Type: touch.TypeBegin},
				touch.Event{X: 1, Y: 1, Type: touch.TypeEnd},
				key.Event{Code: key.CodeLeftAlt, Direction: key.DirRelease},
				touch.Event{X: 1, Y: 1, Type: touch.TypeBegin},
			},
			[]string{"down (1, 1) 0 4", "up (1, 1) 0", "down (1, 1) 0 0"},
		},
	}
	for _, tt := range tests {
		have := run(tt.events...)
		if strings.Join(have, "; ") != strings.Join(tt.want, "; ") {
			t.Errorf("%s:\nhave %q\nwant %q", tt.name, have, tt.want)
		}
	}
}

func TestFilterChart(t *testing.T) {
	cfg := chart.DefaultConfig()
	cfg.ZoomMode = zoom.Both
	c := chart.New(cfg)
	x := c.XAxes().Items()[0]
	x.SetLimits(0, 100)
	f := &Filter{Target: c}

	f.Filter(size.Event{WidthPx: 100, HeightPx: 100})
	if c.Core() == nil {
		t.Fatal("size event did not load the chart")
	}
	f.Filter(mouse.Event{X: 50, Y: 50, Button: mouse.ButtonWheelUp, Direction: mouse.DirStep})
	if have := x.Visible(); !(have.Span() < 100) {
		t.Fatalf("wheel up: have %v", have)
	}

	x.SetLimits(0, 100)
	f.Filter(mouse.Event{X: 50, Y: 50, Button: mouse.ButtonLeft, Direction: mouse.DirPress, Modifiers: key.ModControl})
	f.Filter(mouse.Event{X: 60, Y: 50, Direction: mouse.DirNone})
	if have := x.Visible(); have != (axis.Range{Min: 0, Max: 100}) {
		t.Fatalf("control drag panned: %v", have)
	}
	f.Filter(mouse.Event{X: 60, Y: 50, Button: mouse.ButtonLeft, Direction: mouse.DirRelease})

	f.Filter(touch.Event{X: 50, Y: 50, Type: touch.TypeBegin})
	f.Filter(touch.Event{X: 40, Y: 50, Type: touch.TypeMove})
	f.Filter(touch.Event{X: 40, Y: 50, Type: touch.TypeEnd})
	if have := x.Visible(); have != (axis.Range{Min: 10, Max: 110}) {
		t.Fatalf("touch drag: have %v, want [10, 110]", have)
	}

	f.Filter(lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageDead})
	if c.Core() != nil || x.Observers() != 0 {
		t.Fatal("chart not unloaded")
	}
}
