package geom

import "fmt"

// RectSpec is an axis-aligned rectangle described by its center and
// its extents.
//
// Width and Height are normally non-negative. FromCorners does not
// reorder its arguments, so it can produce negative extents when the
// corners are given in the wrong order. Canon fixes that.
type RectSpec struct {
	X, Y          float64
	Width, Height float64
}

// Rs returns a RectSpec centered at c with the given extents.
func Rs(c Vec, w, h float64) RectSpec {
	return RectSpec{X: c.X, Y: c.Y, Width: w, Height: h}
}

// FromCorners builds a RectSpec from its top-left and bottom-right
// corners. The extents are the signed differences brx-tlx and tly-bry.
func FromCorners(tlx, tly, brx, bry float64) RectSpec {
	w := brx - tlx
	h := tly - bry
	return RectSpec{
		X:      tlx + w/2,
		Y:      bry + h/2,
		Width:  w,
		Height: h,
	}
}

// Center returns the center point of r.
func (r RectSpec) Center() Vec {
	return Vec{X: r.X, Y: r.Y}
}

// Size returns the extents of r as a vector.
func (r RectSpec) Size() Vec {
	return Vec{X: r.Width, Y: r.Height}
}

// HalfSize returns half of the extents of r. Multiplying an anchor
// direction by it gives the offset of that anchor from the center.
func (r RectSpec) HalfSize() Vec {
	return Vec{X: r.Width / 2, Y: r.Height / 2}
}

// TopLeft returns the corner with the smallest X and largest Y of a
// rectangle with non-negative extents.
func (r RectSpec) TopLeft() Vec {
	return Vec{X: r.X - r.Width/2, Y: r.Y + r.Height/2}
}

// BottomRight returns the corner opposite of TopLeft.
func (r RectSpec) BottomRight() Vec {
	return Vec{X: r.X + r.Width/2, Y: r.Y - r.Height/2}
}

// Edge returns the coordinate of a single edge of r. For EdgeTop and
// EdgeBottom this is a Y coordinate, for EdgeLeft and EdgeRight an X
// coordinate. Any other value of e returns 0.
func (r RectSpec) Edge(e Edges) float64 {
	switch e {
	case EdgeTop:
		return r.Y + r.Height/2
	case EdgeBottom:
		return r.Y - r.Height/2
	case EdgeLeft:
		return r.X - r.Width/2
	case EdgeRight:
		return r.X + r.Width/2
	default:
		return 0
	}
}

// Degenerate reports whether r has a zero extent along either axis.
// The anchor direction of a point can not be recovered from such a
// rectangle.
func (r RectSpec) Degenerate() bool {
	return r.Width == 0 || r.Height == 0
}

// Canon returns r with both extents made non-negative. The center does
// not move.
func (r RectSpec) Canon() RectSpec {
	if r.Width < 0 {
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Height = -r.Height
	}
	return r
}

// IsFinite reports whether every field of r is a finite number.
func (r RectSpec) IsFinite() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.Width) && isFinite(r.Height)
}

func (r RectSpec) String() string {
	return fmt.Sprintf("%v %gx%g", r.Center(), r.Width, r.Height)
}
