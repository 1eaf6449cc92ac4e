package visual

import (
	"dasa.cc/cartesian/axis"
	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/hit"
	"dasa.cc/cartesian/notify"
	"golang.org/x/exp/slices"
)

// Box is a rectangle anchored at a data point and sized in pixels, with
// optional children laid out relative to it. A change to any descendant is
// notified by b as PropBounds.
type Box struct {
	notify.Properties

	label    string
	at       geom.Point
	size     geom.Size
	offset   geom.Point
	xAt, yAt int
	children []*Box
	parent   *Box
	link     notify.Handle
}

// NewBox returns a box with its top-left corner at data point at.
func NewBox(at geom.Point, size geom.Size) *Box {
	return &Box{at: at, size: size}
}

func (b *Box) Label() string { return b.label }

func (b *Box) SetLabel(label string) {
	if b.label != label {
		b.label = label
		b.Notify(PropLabel)
	}
}

// MoveTo anchors the box at data point at.
func (b *Box) MoveTo(at geom.Point) {
	if b.at != at {
		b.at = at
		b.Notify(PropBounds)
	}
}

func (b *Box) Resize(size geom.Size) {
	if b.size != size {
		b.size = size
		b.Notify(PropBounds)
	}
}

func (b *Box) SetAxes(x, y int) {
	if b.xAt == x && b.yAt == y {
		return
	}
	b.xAt, b.yAt = x, y
	b.Notify(PropAxes)
}

// Add appends a child placed at a pixel offset from b's corner.
func (b *Box) Add(child *Box, offset geom.Point) {
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent, child.offset = b, offset
	child.link = child.OnChange(func(string) { b.Notify(PropBounds) })
	b.children = append(b.children, child)
	b.Notify(PropBounds)
}

func (b *Box) Remove(child *Box) bool {
	i := slices.Index(b.children, child)
	if i < 0 {
		return false
	}
	b.children = slices.Delete(b.children, i, i+1)
	child.RemoveCallback(child.link)
	child.parent, child.link = nil, notify.Handle{}
	b.Notify(PropBounds)
	return true
}

func (b *Box) Children() []*Box { return slices.Clone(b.children) }

// Rect returns the pixel rectangle of b. Children take their anchor from
// the root box.
func (b *Box) Rect(ctx hit.Context) (geom.Rect, error) {
	if b.parent != nil {
		r, err := b.parent.Rect(ctx)
		if err != nil {
			return geom.Rect{}, err
		}
		return geom.Rect{Location: r.Location.Add(b.offset), Size: b.size}, nil
	}
	sx, err := ctx.Scaler(axis.X, b.xAt)
	if err != nil {
		return geom.Rect{}, err
	}
	sy, err := ctx.Scaler(axis.Y, b.yAt)
	if err != nil {
		return geom.Rect{}, err
	}
	return geom.Rect{Location: axis.ToPixels(sx, sy, b.at), Size: b.size}, nil
}

// IsHitBy returns b and every descendant containing p, parents first.
func (b *Box) IsHitBy(ctx hit.Context, p geom.Point) []hit.Visual {
	r, err := b.Rect(ctx)
	if err != nil {
		return nil
	}
	var hits []hit.Visual
	if r.Contains(p) {
		hits = append(hits, b)
	}
	for _, c := range b.children {
		hits = append(hits, c.IsHitBy(ctx, p)...)
	}
	return hits
}
