package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dasa.cc/cartesian/axis"
	"dasa.cc/cartesian/chart"
	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/hit"
	"dasa.cc/cartesian/input"
	"dasa.cc/cartesian/notify"
	"dasa.cc/cartesian/series"
	"dasa.cc/cartesian/visual"
	"dasa.cc/cartesian/zoom"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
)

var errUsage = errors.New("usage")

// probe drives a headless chart from text commands.
type probe struct {
	chart    *chart.Chart
	filter   input.Filter
	out      io.Writer
	series   *notify.Collection[hit.Series]
	sections *notify.Collection[*visual.Section]
	visuals  *notify.Collection[hit.Visual]
	complete *completer
}

func newProbe(cfg chart.Config, out io.Writer) *probe {
	p := &probe{
		chart:    chart.New(cfg),
		out:      out,
		series:   notify.NewCollection[hit.Series](),
		sections: notify.NewCollection[*visual.Section](),
		visuals:  notify.NewCollection[hit.Visual](),
	}
	p.filter.Target = p.chart
	p.chart.Batch(func() {
		p.chart.SetSeries(p.series)
		p.chart.SetSections(p.sections)
		p.chart.SetVisualElements(p.visuals)
	})
	var names []string
	for _, c := range commands {
		names = append(names, c.name)
	}
	p.complete = newCompleter(names...)
	return p
}

func (p *probe) add(xs ...*series.XY) {
	p.chart.Batch(func() {
		for _, s := range xs {
			p.series.Add(s)
		}
	})
}

type command struct {
	name, usage, help string
	run               func(p *probe, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"size", "W H", "resize the view", (*probe).size},
		{"down", "X Y [left|right|middle] [shift|ctrl|alt|meta]...", "press a mouse button", (*probe).down},
		{"move", "X Y", "move the pointer", (*probe).move},
		{"up", "X Y [left|right|middle]", "release a mouse button", (*probe).up},
		{"wheel", "X Y in|out", "scroll the wheel", (*probe).wheel},
		{"touch", "begin|move|end X Y", "touch the view", (*probe).touch},
		{"px", "X Y [XI YI]", "map data to pixels", (*probe).px},
		{"data", "X Y [XI YI]", "map pixels to data", (*probe).data},
		{"points", "X Y [strategy] [hover|selection]", "find series points under a pixel", (*probe).points},
		{"visuals", "X Y", "find visual elements under a pixel", (*probe).findVisuals},
		{"axes", "", "list axes", (*probe).axes},
		{"limits", "x|y I MIN MAX", "fix the visible range of an axis", (*probe).limits},
		{"fit", "x|y I", "fit an axis to its data", (*probe).fit},
		{"span", "x|y I MIN MAX", "bound the zoomed span of an axis", (*probe).span},
		{"invert", "x|y I on|off", "invert an axis", (*probe).invert},
		{"zoom", "none|x|y|both|pan|panx|pany|zoomx|zoomy", "set the zoom mode", (*probe).zoom},
		{"speed", "V", "set the zoom speed", (*probe).speed},
		{"strategy", "automatic|exact|exactclosest|nearestx|nearesty|nearestxy", "set the finding strategy", (*probe).strategy},
		{"ratio", "on|off", "match the screen data ratio of the axes", (*probe).ratio},
		{"margin", "LEFT TOP RIGHT BOTTOM", "inset the draw margin", (*probe).margin},
		{"series", "", "list series", (*probe).list},
		{"add", "NAME X Y [X Y]...", "add a series", (*probe).addSeries},
		{"show", "NAME", "show a series", (*probe).show},
		{"hide", "NAME", "hide a series", (*probe).hide},
		{"section", "x|y FROM TO", "highlight a band of data space", (*probe).section},
		{"box", "X Y W H", "add a box anchored at a data point", (*probe).box},
		{"unload", "", "unload the chart", (*probe).unload},
		{"help", "", "list commands", (*probe).help},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// exec runs one command line. Blank lines and comments are ignored.
func (p *probe) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	c, ok := lookup(fields[0])
	if !ok {
		if m := p.complete.Match(fields[0], 0.33); len(m) > 0 {
			return fmt.Errorf("unknown command %q, did you mean %q?", fields[0], m[0])
		}
		return fmt.Errorf("unknown command %q", fields[0])
	}
	if err := c.run(p, fields[1:]); err != nil {
		if errors.Is(err, errUsage) {
			return fmt.Errorf("usage: %s %s", c.name, c.usage)
		}
		return fmt.Errorf("%s: %w", c.name, err)
	}
	return nil
}

func floats(args []string) ([]float64, error) {
	vs := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", a, errUsage)
		}
		vs[i] = v
	}
	return vs, nil
}

func point(args []string) (geom.Point, error) {
	if len(args) < 2 {
		return geom.Point{}, errUsage
	}
	vs, err := floats(args[:2])
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(vs[0], vs[1]), nil
}

func orientation(s string) (axis.Orientation, error) {
	switch strings.ToLower(s) {
	case "x":
		return axis.X, nil
	case "y":
		return axis.Y, nil
	}
	return 0, errUsage
}

func onOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, errUsage
}

func (p *probe) axis(o, i string) (*axis.Axis, error) {
	ori, err := orientation(o)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(i)
	if err != nil {
		return nil, errUsage
	}
	axes := p.chart.XAxes().Items()
	if ori == axis.Y {
		axes = p.chart.YAxes().Items()
	}
	if n < 0 || n >= len(axes) {
		return nil, &chart.AxisIndexError{Orientation: ori, Index: n, Len: len(axes)}
	}
	return axes[n], nil
}

func (p *probe) size(args []string) error {
	vs, err := floats(args)
	if err != nil || len(vs) != 2 || vs[0] < 0 || vs[1] < 0 {
		return errUsage
	}
	p.filter.Filter(size.Event{WidthPx: int(vs[0]), HeightPx: int(vs[1])})
	return nil
}

func mouseButton(s string) (mouse.Button, bool) {
	switch s {
	case "left":
		return mouse.ButtonLeft, true
	case "right":
		return mouse.ButtonRight, true
	case "middle":
		return mouse.ButtonMiddle, true
	}
	return mouse.ButtonNone, false
}

func (p *probe) down(args []string) error {
	pt, err := point(args)
	if err != nil {
		return err
	}
	e := mouse.Event{X: float32(pt.X), Y: float32(pt.Y), Button: mouse.ButtonLeft, Direction: mouse.DirPress}
	for _, a := range args[2:] {
		if b, ok := mouseButton(a); ok {
			e.Button = b
			continue
		}
		switch a {
		case "shift":
			e.Modifiers |= key.ModShift
		case "ctrl":
			e.Modifiers |= key.ModControl
		case "alt":
			e.Modifiers |= key.ModAlt
		case "meta":
			e.Modifiers |= key.ModMeta
		default:
			return errUsage
		}
	}
	p.filter.Filter(e)
	return nil
}

func (p *probe) move(args []string) error {
	pt, err := point(args)
	if err != nil {
		return err
	}
	p.filter.Filter(mouse.Event{X: float32(pt.X), Y: float32(pt.Y), Direction: mouse.DirNone})
	return nil
}

func (p *probe) up(args []string) error {
	pt, err := point(args)
	if err != nil {
		return err
	}
	e := mouse.Event{X: float32(pt.X), Y: float32(pt.Y), Button: mouse.ButtonLeft, Direction: mouse.DirRelease}
	if len(args) > 2 {
		b, ok := mouseButton(args[2])
		if !ok {
			return errUsage
		}
		e.Button = b
	}
	p.filter.Filter(e)
	return nil
}

func (p *probe) wheel(args []string) error {
	pt, err := point(args)
	if err != nil || len(args) != 3 {
		return errUsage
	}
	var dir zoom.Direction
	if err := dir.UnmarshalText([]byte(args[2])); err != nil {
		return errUsage
	}
	b := mouse.ButtonWheelUp
	if dir == zoom.Out {
		b = mouse.ButtonWheelDown
	}
	p.filter.Filter(mouse.Event{X: float32(pt.X), Y: float32(pt.Y), Button: b, Direction: mouse.DirStep})
	return nil
}

func (p *probe) touch(args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	pt, err := point(args[1:])
	if err != nil {
		return err
	}
	e := touch.Event{X: float32(pt.X), Y: float32(pt.Y)}
	switch args[0] {
	case "begin":
		e.Type = touch.TypeBegin
	case "move":
		e.Type = touch.TypeMove
	case "end":
		e.Type = touch.TypeEnd
	default:
		return errUsage
	}
	p.filter.Filter(e)
	return nil
}

func axisIndexes(args []string) (xi, yi int, err error) {
	switch len(args) {
	case 2:
		return 0, 0, nil
	case 4:
		xi, err = strconv.Atoi(args[2])
		if err != nil {
			return 0, 0, errUsage
		}
		yi, err = strconv.Atoi(args[3])
		if err != nil {
			return 0, 0, errUsage
		}
		return xi, yi, nil
	}
	return 0, 0, errUsage
}

func (p *probe) px(args []string) error {
	pt, err := point(args)
	if err != nil {
		return err
	}
	xi, yi, err := axisIndexes(args)
	if err != nil {
		return err
	}
	q, err := p.chart.ScaleDataToPixels(pt, xi, yi)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, q)
	return nil
}

func (p *probe) data(args []string) error {
	pt, err := point(args)
	if err != nil {
		return err
	}
	xi, yi, err := axisIndexes(args)
	if err != nil {
		return err
	}
	q, err := p.chart.ScalePixelsToData(pt, xi, yi)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, q)
	return nil
}

func (p *probe) points(args []string) error {
	pt, err := point(args)
	if err != nil {
		return err
	}
	var (
		st      hit.Strategy
		purpose hit.Purpose
	)
	if len(args) > 2 {
		if err := st.UnmarshalText([]byte(args[2])); err != nil {
			return err
		}
	}
	if len(args) > 3 {
		if err := purpose.UnmarshalText([]byte(args[3])); err != nil {
			return err
		}
	}
	pts, err := p.chart.GetPointsAt(pt, st, purpose)
	if err != nil {
		return err
	}
	if len(pts) == 0 {
		fmt.Fprintln(p.out, "no points")
	}
	for _, cp := range pts {
		fmt.Fprintf(p.out, "%v[%d] (%g, %g) at %v, %.4gpx\n", cp.Series, cp.Index, cp.X, cp.Y, cp.Pixel, cp.Distance)
	}
	return nil
}

func (p *probe) findVisuals(args []string) error {
	pt, err := point(args)
	if err != nil {
		return err
	}
	vs, err := p.chart.GetVisualsAt(pt)
	if err != nil {
		return err
	}
	if len(vs) == 0 {
		fmt.Fprintln(p.out, "no visuals")
	}
	for _, v := range vs {
		if b, ok := v.(*visual.Box); ok && b.Label() != "" {
			fmt.Fprintln(p.out, b.Label())
			continue
		}
		fmt.Fprintf(p.out, "%T\n", v)
	}
	return nil
}

func (p *probe) axes(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	list := func(o axis.Orientation, axes []*axis.Axis) {
		for i, a := range axes {
			line := fmt.Sprintf("%v%d %v", o, i, a.Visible())
			if _, ok := a.Limits(); !ok {
				line += " auto"
			}
			if a.Inverted() {
				line += " inverted"
			}
			if core := p.chart.Core(); core != nil {
				if s, err := core.Scaler(o, i); err == nil {
					line += fmt.Sprintf(" %.4gpx/unit ticks %v", s.PixelsPerUnit(), s.Ticks(a.TickCount()))
				}
			}
			fmt.Fprintln(p.out, line)
		}
	}
	list(axis.X, p.chart.XAxes().Items())
	list(axis.Y, p.chart.YAxes().Items())
	return nil
}

func (p *probe) limits(args []string) error {
	if len(args) != 4 {
		return errUsage
	}
	a, err := p.axis(args[0], args[1])
	if err != nil {
		return err
	}
	vs, err := floats(args[2:])
	if err != nil {
		return err
	}
	a.SetLimits(vs[0], vs[1])
	return nil
}

func (p *probe) fit(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	a, err := p.axis(args[0], args[1])
	if err != nil {
		return err
	}
	a.ClearLimits()
	return nil
}

func (p *probe) span(args []string) error {
	if len(args) != 4 {
		return errUsage
	}
	a, err := p.axis(args[0], args[1])
	if err != nil {
		return err
	}
	vs, err := floats(args[2:])
	if err != nil {
		return err
	}
	a.SetSpanLimits(vs[0], vs[1])
	return nil
}

func (p *probe) invert(args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	a, err := p.axis(args[0], args[1])
	if err != nil {
		return err
	}
	v, err := onOff(args[2])
	if err != nil {
		return err
	}
	a.SetInverted(v)
	return nil
}

func (p *probe) zoom(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	var m zoom.Mode
	if err := m.UnmarshalText([]byte(args[0])); err != nil {
		return err
	}
	p.chart.SetZoomMode(m)
	return nil
}

func (p *probe) speed(args []string) error {
	vs, err := floats(args)
	if err != nil || len(vs) != 1 {
		return errUsage
	}
	p.chart.SetZoomSpeed(vs[0])
	return nil
}

func (p *probe) strategy(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	var s hit.Strategy
	if err := s.UnmarshalText([]byte(args[0])); err != nil {
		return err
	}
	p.chart.SetFindingStrategy(s)
	return nil
}

func (p *probe) ratio(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	v, err := onOff(args[0])
	if err != nil {
		return err
	}
	p.chart.SetMatchAxesScreenDataRatio(v)
	return nil
}

func (p *probe) margin(args []string) error {
	vs, err := floats(args)
	if err != nil || len(vs) != 4 {
		return errUsage
	}
	p.chart.SetDrawMargin(geom.Insets{Left: vs[0], Top: vs[1], Right: vs[2], Bottom: vs[3]})
	return nil
}

func (p *probe) find(name string) (*series.XY, error) {
	for _, s := range p.series.Items() {
		if xy, ok := s.(*series.XY); ok && xy.Name() == name {
			return xy, nil
		}
	}
	return nil, fmt.Errorf("no series %q", name)
}

func (p *probe) list(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	for _, s := range p.series.Items() {
		xy, ok := s.(*series.XY)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%v on x%d y%d", xy, xy.ScalesXAt(), xy.ScalesYAt())
		if x, y, ok := xy.Bounds(); ok {
			line += fmt.Sprintf(" x%v y%v", x, y)
		}
		if !xy.Visible() {
			line += " hidden"
		}
		fmt.Fprintln(p.out, line)
	}
	return nil
}

func (p *probe) addSeries(args []string) error {
	if len(args) < 3 || len(args)%2 != 1 {
		return errUsage
	}
	vs, err := floats(args[1:])
	if err != nil {
		return err
	}
	s := series.New(args[0])
	for i := 0; i < len(vs); i += 2 {
		s.Append(geom.Pt(vs[i], vs[i+1]))
	}
	p.add(s)
	return nil
}

func (p *probe) show(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	s, err := p.find(args[0])
	if err != nil {
		return err
	}
	s.SetVisible(true)
	return nil
}

func (p *probe) hide(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	s, err := p.find(args[0])
	if err != nil {
		return err
	}
	s.SetVisible(false)
	return nil
}

func (p *probe) section(args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	o, err := orientation(args[0])
	if err != nil {
		return err
	}
	vs, err := floats(args[1:])
	if err != nil {
		return err
	}
	if o == axis.X {
		p.sections.Add(visual.XBand(vs[0], vs[1]))
	} else {
		p.sections.Add(visual.YBand(vs[0], vs[1]))
	}
	return nil
}

func (p *probe) box(args []string) error {
	vs, err := floats(args)
	if err != nil || len(vs) != 4 {
		return errUsage
	}
	b := visual.NewBox(geom.Pt(vs[0], vs[1]), geom.Size{Width: vs[2], Height: vs[3]})
	b.SetLabel(fmt.Sprintf("box%d", p.visuals.Len()+1))
	p.visuals.Add(b)
	return nil
}

func (p *probe) unload(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	p.filter.Filter(lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageDead})
	return nil
}

func (p *probe) help(args []string) error {
	for _, c := range commands {
		fmt.Fprintf(p.out, "%-9s %-40s %s\n", c.name, c.usage, c.help)
	}
	return nil
}
