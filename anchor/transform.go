package anchor

import (
	"math"

	"deedles.dev/xrect/geom"
)

// Transform returns the rectangle that results from dragging the
// anchor of old with direction dir to pos. The anchor opposite of dir
// stays where it is.
//
// Components of pos along an axis that dir does not move are ignored,
// so dragging Right only ever changes the width. If pos crosses the
// pivot the rectangle flips: its extents stay non-negative and the
// dragged point becomes the opposite side. See Flipped.
//
// Rotation is not taken into account.
func Transform(old geom.RectSpec, dir, pos geom.Vec) geom.RectSpec {
	from := Pos(old, dir)
	pivot := Pos(old, dir.Neg())
	to := Aligned(pos, from, dir)

	center := to.Add(pivot).Div(geom.V(2, 2))

	w := old.Width
	if dir.X != 0 {
		w = math.Abs(to.X - pivot.X)
	}
	h := old.Height
	if dir.Y != 0 {
		h = math.Abs(to.Y - pivot.Y)
	}

	return geom.Rs(center, w, h)
}

// TransformAnchor is like Transform but takes an Anchor instead of a
// raw direction.
func TransformAnchor(old geom.RectSpec, a Anchor, pos geom.Vec) geom.RectSpec {
	return Transform(old, a.Vec(), pos)
}

// Flipped returns the direction of the anchor that ends up under pos
// after Transform(old, dir, pos). It equals dir unless pos crossed the
// pivot along a free axis, in which case that component is negated.
// The pivot of the transform is always at Pos(result, Flipped(...).Neg()).
//
// old is expected to have non-negative extents.
func Flipped(old geom.RectSpec, dir, pos geom.Vec) geom.Vec {
	pivot := Pos(old, dir.Neg())
	to := Aligned(pos, Pos(old, dir), dir)
	return geom.V(
		flipAxis(dir.X, to.X-pivot.X),
		flipAxis(dir.Y, to.Y-pivot.Y),
	)
}

func flipAxis(d, offset float64) float64 {
	switch {
	case d == 0:
		return 0
	case offset > 0:
		return 1
	case offset < 0:
		return -1
	default:
		return d
	}
}
