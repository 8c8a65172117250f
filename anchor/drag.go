package anchor

import "deedles.dev/xrect/geom"

// Drag tracks a single resize gesture. Every update is computed from
// the rectangle as it was when the drag started, so moving the pointer
// back and forth across the pivot never accumulates error.
//
// A Drag is not safe for concurrent use.
type Drag struct {
	start  geom.RectSpec
	anchor Anchor
	rect   geom.RectSpec
	cur    Anchor
}

// NewDrag starts dragging anchor a of r. start is canonicalized first.
func NewDrag(start geom.RectSpec, a Anchor) *Drag {
	start = start.Canon()
	return &Drag{
		start:  start,
		anchor: a,
		rect:   start,
		cur:    a,
	}
}

// Update moves the dragged anchor to pos and returns the new
// rectangle.
func (d *Drag) Update(pos geom.Vec) geom.RectSpec {
	dir := d.anchor.Vec()
	d.rect = Transform(d.start, dir, pos)
	d.cur, _ = FromVec(Flipped(d.start, dir, pos))
	return d.rect
}

// Rect returns the rectangle produced by the latest update, or the
// starting rectangle if there were none.
func (d *Drag) Rect() geom.RectSpec {
	return d.rect
}

// Start returns the rectangle as it was when the drag began.
func (d *Drag) Start() geom.RectSpec {
	return d.start
}

// Anchor returns the anchor of Rect that is currently under the
// pointer. It differs from the anchor passed to NewDrag after a flip.
func (d *Drag) Anchor() Anchor {
	return d.cur
}

// Pivot returns the fixed point of the drag.
func (d *Drag) Pivot() geom.Vec {
	return Pos(d.start, d.anchor.Opposite().Vec())
}
