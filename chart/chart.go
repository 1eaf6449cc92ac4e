// Package chart binds plottable collections, axes and pointer input to a
// chart core that lays them out, scales them and answers spatial queries.
package chart

import (
	"log"
	"math"

	"dasa.cc/cartesian/axis"
	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/hit"
	"dasa.cc/cartesian/notify"
	"dasa.cc/cartesian/ratio"
	"dasa.cc/cartesian/visual"
	"dasa.cc/cartesian/zoom"
)

// Property names passed to change callbacks.
const (
	PropSeries          = "Series"
	PropXAxes           = "XAxes"
	PropYAxes           = "YAxes"
	PropSections        = "Sections"
	PropVisualElements  = "VisualElements"
	PropFindingStrategy = "FindingStrategy"
	PropZoomMode        = "ZoomMode"
	PropZoomSpeed       = "ZoomSpeed"
	PropDrawMargin      = "DrawMargin"
	PropMatchRatio      = "MatchAxesScreenDataRatio"
)

// Chart is a cartesian chart view. It observes its collections and every
// element in them, and requests one core update per batch of changes.
//
// A Chart is not safe for concurrent use; drive it from one goroutine.
type Chart struct {
	notify.Properties

	log *log.Logger

	series   notify.Source[hit.Series]
	xAxes    notify.Source[*axis.Axis]
	yAxes    notify.Source[*axis.Axis]
	sections notify.Source[*visual.Section]
	visuals  notify.Source[hit.Visual]

	seriesObs   *notify.Observer[hit.Series]
	xAxesObs    *notify.Observer[*axis.Axis]
	yAxesObs    *notify.Observer[*axis.Axis]
	sectionsObs *notify.Observer[*visual.Section]
	visualsObs  *notify.Observer[hit.Visual]

	changed *notify.Signal

	strategy   hit.Strategy
	zoomMode   zoom.Mode
	zoomSpeed  float64
	insets     geom.Insets
	matchRatio bool
	sync       *ratio.Synchronizer
	xMembers   members
	yMembers   members

	core *Core
}

// New returns an unloaded chart with one X axis, one Y axis and no series.
func New(cfg Config) *Chart {
	c := &Chart{
		log:        cfg.logger(),
		strategy:   cfg.FindingStrategy,
		zoomMode:   cfg.ZoomMode,
		zoomSpeed:  cfg.ZoomSpeed,
		insets:     cfg.DrawMargin,
		matchRatio: cfg.MatchRatio,
	}
	c.changed = notify.NewSignal(c.update)
	c.seriesObs = notify.NewObserver[hit.Series](c.changed.Raise)
	c.xAxesObs = notify.NewObserver[*axis.Axis](c.changed.Raise)
	c.yAxesObs = notify.NewObserver[*axis.Axis](c.changed.Raise)
	c.sectionsObs = notify.NewObserver[*visual.Section](c.changed.Raise)
	c.visualsObs = notify.NewObserver[hit.Visual](c.changed.Raise)

	c.changed.Batch(func() {
		c.SetSeries(notify.NewCollection[hit.Series]())
		c.SetXAxes(notify.NewCollection(axis.New(axis.X)))
		c.SetYAxes(notify.NewCollection(axis.New(axis.Y)))
		c.SetSections(notify.NewCollection[*visual.Section]())
		c.SetVisualElements(notify.NewCollection[hit.Visual]())
	})
	return c
}

func (c *Chart) update() {
	if c.core != nil {
		c.core.Update()
	}
}

// Batch runs fn with change signals held; the core updates at most once,
// after fn returns.
func (c *Chart) Batch(fn func()) { c.changed.Batch(fn) }

// Core returns the loaded core, or nil.
func (c *Chart) Core() *Core { return c.core }

func (c *Chart) Series() notify.Source[hit.Series] { return c.series }

// SetSeries stops observing the current series collection, observes src,
// and signals the change. A nil src is an empty collection.
func (c *Chart) SetSeries(src notify.Source[hit.Series]) {
	if src == nil {
		src = notify.Slice[hit.Series](nil)
	}
	c.seriesObs.Dispose(c.series)
	c.series = src
	c.seriesObs.Initialize(src)
	c.emit(PropSeries)
}

func (c *Chart) XAxes() notify.Source[*axis.Axis] { return c.xAxes }

func (c *Chart) SetXAxes(src notify.Source[*axis.Axis]) {
	if src == nil {
		src = notify.Slice[*axis.Axis](nil)
	}
	c.xAxesObs.Dispose(c.xAxes)
	c.xAxes = src
	c.watchMembers(&c.xMembers, src)
	c.xAxesObs.Initialize(src)
	c.resync()
	c.emit(PropXAxes)
}

func (c *Chart) YAxes() notify.Source[*axis.Axis] { return c.yAxes }

func (c *Chart) SetYAxes(src notify.Source[*axis.Axis]) {
	if src == nil {
		src = notify.Slice[*axis.Axis](nil)
	}
	c.yAxesObs.Dispose(c.yAxes)
	c.yAxes = src
	c.watchMembers(&c.yMembers, src)
	c.yAxesObs.Initialize(src)
	c.resync()
	c.emit(PropYAxes)
}

func (c *Chart) Sections() notify.Source[*visual.Section] { return c.sections }

func (c *Chart) SetSections(src notify.Source[*visual.Section]) {
	if src == nil {
		src = notify.Slice[*visual.Section](nil)
	}
	c.sectionsObs.Dispose(c.sections)
	c.sections = src
	c.sectionsObs.Initialize(src)
	c.emit(PropSections)
}

func (c *Chart) VisualElements() notify.Source[hit.Visual] { return c.visuals }

func (c *Chart) SetVisualElements(src notify.Source[hit.Visual]) {
	if src == nil {
		src = notify.Slice[hit.Visual](nil)
	}
	c.visualsObs.Dispose(c.visuals)
	c.visuals = src
	c.visualsObs.Initialize(src)
	c.emit(PropVisualElements)
}

func (c *Chart) emit(prop string) {
	c.Notify(prop)
	c.changed.Raise()
}

func (c *Chart) FindingStrategy() hit.Strategy { return c.strategy }

func (c *Chart) SetFindingStrategy(s hit.Strategy) {
	if c.strategy != s {
		c.strategy = s
		c.emit(PropFindingStrategy)
	}
}

func (c *Chart) ZoomMode() zoom.Mode { return c.zoomMode }

func (c *Chart) SetZoomMode(m zoom.Mode) {
	if c.zoomMode != m {
		c.zoomMode = m
		if c.core != nil {
			c.core.zoom.Cancel()
		}
		c.emit(PropZoomMode)
	}
}

func (c *Chart) ZoomSpeed() float64 { return c.zoomSpeed }

// SetZoomSpeed sets the zoom step multiplier, clamped to
// [zoom.MinSpeed, zoom.MaxSpeed].
func (c *Chart) SetZoomSpeed(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = math.Max(zoom.MinSpeed, math.Min(zoom.MaxSpeed, v))
	if c.zoomSpeed != v {
		c.zoomSpeed = v
		c.emit(PropZoomSpeed)
	}
}

// DrawMargin returns the insets of the plot area from the chart bounds.
func (c *Chart) DrawMargin() geom.Insets { return c.insets }

func (c *Chart) SetDrawMargin(in geom.Insets) {
	if c.insets != in {
		c.insets = in
		c.emit(PropDrawMargin)
	}
}

func (c *Chart) MatchAxesScreenDataRatio() bool { return c.matchRatio }

// SetMatchAxesScreenDataRatio keeps every Y axis at the data-per-pixel ratio
// of the first X axis while enabled.
func (c *Chart) SetMatchAxesScreenDataRatio(v bool) {
	if c.matchRatio == v {
		return
	}
	c.matchRatio = v
	c.resync()
	c.emit(PropMatchRatio)
}

// members is a subscription to the structural changes of an axis list.
type members struct {
	src notify.Observable[*axis.Axis]
	h   notify.Handle
}

// watchMembers moves m to src; any later insert, remove or replace in src
// rebuilds the ratio pairs.
func (c *Chart) watchMembers(m *members, src notify.Source[*axis.Axis]) {
	if m.src != nil {
		m.src.RemoveCollectionCallback(m.h)
		*m = members{}
	}
	if obs, ok := src.(notify.Observable[*axis.Axis]); ok {
		m.src = obs
		m.h = obs.OnCollectionChanged(func(notify.Change[*axis.Axis]) { c.resync() })
	}
}

// resync rebuilds the ratio synchronizer from the current axes.
func (c *Chart) resync() {
	if c.sync != nil {
		c.sync.Disable()
		c.sync = nil
	}
	if !c.matchRatio || c.core == nil {
		return
	}
	xs, ys := c.xAxes.Items(), c.yAxes.Items()
	if len(xs) == 0 {
		return
	}
	driver := ratio.Member{Axis: xs[0], Surface: c.core}
	var pairs []ratio.Pair
	for _, y := range ys {
		pairs = append(pairs, ratio.Pair{Driver: driver, Dependent: ratio.Member{Axis: y, Surface: c.core}})
	}
	c.sync = ratio.New(pairs...)
	c.sync.Enable()
}

// Load creates the core for a view of the given size and runs the first
// layout pass.
func (c *Chart) Load(size geom.Size) {
	if c.core != nil {
		c.Resize(size)
		return
	}
	c.core = newCore(c, size)
	c.Batch(func() {
		c.resync()
		c.changed.Raise()
	})
}

// Resize updates the view size and lays the chart out again.
func (c *Chart) Resize(size geom.Size) {
	if c.core == nil {
		return
	}
	c.core.size = size
	c.core.Update()
}

// Unload releases every subscription the chart holds and drops its core.
// Collections are replaced by empty ones; their elements are untouched.
func (c *Chart) Unload() {
	if c.sync != nil {
		c.sync.Disable()
		c.sync = nil
	}
	c.watchMembers(&c.xMembers, nil)
	c.watchMembers(&c.yMembers, nil)
	c.seriesObs.Dispose(c.series)
	c.xAxesObs.Dispose(c.xAxes)
	c.yAxesObs.Dispose(c.yAxes)
	c.sectionsObs.Dispose(c.sections)
	c.visualsObs.Dispose(c.visuals)
	c.series = notify.Slice[hit.Series](nil)
	c.xAxes = notify.Slice[*axis.Axis](nil)
	c.yAxes = notify.Slice[*axis.Axis](nil)
	c.sections = notify.Slice[*visual.Section](nil)
	c.visuals = notify.Slice[hit.Visual](nil)
	c.core = nil
}

func (c *Chart) ready() (*Core, error) {
	if c.core == nil || !c.core.measured {
		return nil, ErrUninitialized
	}
	return c.core, nil
}

func (c *Chart) scalers(xi, yi int) (x, y axis.Scaler, err error) {
	core, err := c.ready()
	if err != nil {
		return
	}
	if x, err = core.Scaler(axis.X, xi); err != nil {
		return
	}
	y, err = core.Scaler(axis.Y, yi)
	return
}

// ScalePixelsToData maps a pixel to data values on the given axes.
func (c *Chart) ScalePixelsToData(p geom.Point, xi, yi int) (geom.Point, error) {
	x, y, err := c.scalers(xi, yi)
	if err != nil {
		return geom.Point{}, err
	}
	return axis.ToChartValues(x, y, p), nil
}

// ScaleDataToPixels maps data values on the given axes to a pixel.
func (c *Chart) ScaleDataToPixels(p geom.Point, xi, yi int) (geom.Point, error) {
	x, y, err := c.scalers(xi, yi)
	if err != nil {
		return geom.Point{}, err
	}
	return axis.ToPixels(x, y, p), nil
}

// GetPointsAt returns the series points under p. Automatic defers to the
// chart's finding strategy, then to each series' preference.
func (c *Chart) GetPointsAt(p geom.Point, s hit.Strategy, purpose hit.Purpose) ([]hit.ChartPoint, error) {
	core, err := c.ready()
	if err != nil {
		return nil, err
	}
	if s == hit.Automatic {
		s = c.strategy
	}
	return hit.Find(core, c.series.Items(), p, s, purpose), nil
}

// GetVisualsAt returns the visual elements under p.
func (c *Chart) GetVisualsAt(p geom.Point) ([]hit.Visual, error) {
	core, err := c.ready()
	if err != nil {
		return nil, err
	}
	return hit.FindVisuals(core, c.visuals.Items(), p), nil
}
