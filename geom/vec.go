package geom

import (
	"fmt"
	"math"
)

// Vec is a 2D vector. It is used both for points in the plane and for
// directions. Vec is a value type: every method except Set returns a
// new Vec and leaves the receiver untouched.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// VConv builds a Vec from any numeric pair.
func VConv[T Scalar](x, y T) Vec {
	return Vec{X: float64(x), Y: float64(y)}
}

func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul multiplies v and w componentwise.
func (v Vec) Mul(w Vec) Vec {
	return Vec{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div divides v by w componentwise. A zero component in w yields an
// infinite or NaN component in the result. That result is returned as
// is. Use IsFinite to detect it.
func (v Vec) Div(w Vec) Vec {
	return Vec{X: v.X / w.X, Y: v.Y / w.Y}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Dist returns the Euclidean distance between v and w.
func (v Vec) Dist(w Vec) float64 {
	return math.Hypot(v.X-w.X, v.Y-w.Y)
}

// Clone returns an independent copy of v. Since Vec is a value type
// this is the same as assignment.
func (v Vec) Clone() Vec {
	return v
}

// Set overwrites both components of v in place. It is the only
// mutating operation on Vec.
func (v *Vec) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// IsFinite reports whether neither component is infinite or NaN.
func (v Vec) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func (v Vec) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
