package chart

import (
	"math"

	"dasa.cc/cartesian/axis"
	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/hit"
	"dasa.cc/cartesian/notify"
	"dasa.cc/cartesian/zoom"
)

// Engine is what a Chart asks of its layout engine.
type Engine interface {
	// Update runs a full layout pass.
	Update()
	Zoom(p geom.Point, dir zoom.Direction)
	InvokePointerDown(p geom.Point, alternate bool)
	InvokePointerMove(p geom.Point)
	InvokePointerUp(p geom.Point, alternate bool)
}

// maxPasses bounds the layout passes one Update runs when layout callbacks
// change the chart again.
const maxPasses = 3

// Core lays a Chart out inside its view size and scales its axes onto the
// resulting draw margin. It is the single writer of the draw margin and of
// axis data bounds.
type Core struct {
	chart *Chart

	size     geom.Size
	margin   geom.Rect
	measured bool

	zoom   zoom.Controller
	layout notify.List[geom.Rect]

	updating bool
	pending  bool
	passes   int
}

var (
	_ Engine      = (*Core)(nil)
	_ hit.Context = (*Core)(nil)
	_ zoom.Target = (*Core)(nil)
)

func newCore(c *Chart, size geom.Size) *Core {
	return &Core{chart: c, size: size}
}

// Size returns the view size.
func (core *Core) Size() geom.Size { return core.size }

// DrawMargin returns the plot area of the last layout pass.
func (core *Core) DrawMargin() geom.Rect { return core.margin }

func (core *Core) XAxes() []*axis.Axis { return core.chart.xAxes.Items() }
func (core *Core) YAxes() []*axis.Axis { return core.chart.yAxes.Items() }

// Passes returns the number of layout passes run so far.
func (core *Core) Passes() int { return core.passes }

// OnLayout registers fn to run after every layout pass.
func (core *Core) OnLayout(fn func(margin geom.Rect)) notify.Handle { return core.layout.Add(fn) }

func (core *Core) RemoveLayoutCallback(h notify.Handle) bool { return core.layout.Remove(h) }

// Scaler returns the scaler of axis i of orientation o.
func (core *Core) Scaler(o axis.Orientation, i int) (axis.Scaler, error) {
	axes := core.XAxes()
	if o == axis.Y {
		axes = core.YAxes()
	}
	if i < 0 || i >= len(axes) {
		return axis.Scaler{}, &AxisIndexError{Orientation: o, Index: i, Len: len(axes)}
	}
	return axis.NewScaler(core.margin, axes[i]), nil
}

// Update measures the draw margin, fits axes without limits to their data
// and notifies layout callbacks. Updates requested by those callbacks are
// folded into the running one.
func (core *Core) Update() {
	if core.updating {
		core.pending = true
		return
	}
	core.updating = true
	defer func() { core.updating = false }()

	for n := 0; ; n++ {
		if n == maxPasses {
			core.chart.log.Printf("update: layout did not settle after %d passes", maxPasses)
			core.pending = false
			return
		}
		core.pending = false
		core.pass()
		if !core.pending {
			return
		}
	}
}

func (core *Core) pass() {
	core.passes++
	core.margin = geom.Rect{Size: core.size}.Inset(core.chart.insets)
	core.fit(axis.X, core.XAxes())
	core.fit(axis.Y, core.YAxes())
	core.measured = true
	core.layout.Fire(core.margin)
}

type bounded interface {
	Bounds() (x, y axis.Range, ok bool)
}

type hideable interface {
	Visible() bool
}

// fit writes the data bounds of every axis from the visible series
// scaled on it.
func (core *Core) fit(o axis.Orientation, axes []*axis.Axis) {
	series := core.chart.series.Items()
	for i, a := range axes {
		min, max := math.Inf(1), math.Inf(-1)
		for _, s := range series {
			at := s.ScalesXAt()
			if o == axis.Y {
				at = s.ScalesYAt()
			}
			if at != i {
				continue
			}
			if h, ok := s.(hideable); ok && !h.Visible() {
				continue
			}
			b, ok := s.(bounded)
			if !ok {
				continue
			}
			x, y, ok := b.Bounds()
			if !ok {
				continue
			}
			r := x
			if o == axis.Y {
				r = y
			}
			min, max = math.Min(min, r.Min), math.Max(max, r.Max)
		}
		if min > max {
			a.ClearDataBounds()
		} else {
			a.SetDataBounds(min, max)
		}
		if err := axis.CheckRange(a.Visible()); err != nil {
			core.chart.log.Printf("update: %v axis %d: %v", o, i, err)
		}
	}
}

func (core *Core) controller() *zoom.Controller {
	core.zoom.Mode = core.chart.zoomMode
	core.zoom.Speed = core.chart.zoomSpeed
	return &core.zoom
}

// Zoom applies one zoom step around p.
func (core *Core) Zoom(p geom.Point, dir zoom.Direction) {
	core.controller().Zoom(core, p, dir)
}

func (core *Core) InvokePointerDown(p geom.Point, alternate bool) {
	if !core.margin.Contains(p) {
		return
	}
	core.controller().Down(p, alternate)
}

func (core *Core) InvokePointerMove(p geom.Point) {
	core.controller().Move(core, p)
}

func (core *Core) InvokePointerUp(p geom.Point, alternate bool) {
	core.controller().Up(core, p, alternate)
}

// Selection returns the rectangle of a zoom-to-section gesture in progress.
func (core *Core) Selection() (geom.Rect, bool) { return core.zoom.Selection() }
