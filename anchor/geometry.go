package anchor

import (
	"math"

	"deedles.dev/xiter"
	"deedles.dev/xrect/geom"
)

// lookupEpsilon is the tolerance used by Lookup when snapping a
// computed direction to a canonical one.
const lookupEpsilon = 1e-9

// Pos returns the position of the anchor with direction dir on r.
func Pos(r geom.RectSpec, dir geom.Vec) geom.Vec {
	return r.Center().Add(dir.Mul(r.HalfSize()))
}

// Dir is the inverse of Pos. It returns the direction that, combined
// with r, yields pos. If r is degenerate the result has non-finite
// components.
func Dir(r geom.RectSpec, pos geom.Vec) geom.Vec {
	return pos.Sub(r.Center()).Div(r.HalfSize())
}

// Lookup returns the anchor of r located at pos, if any. Unlike Dir it
// tolerates rounding error and reports false instead of producing
// non-finite values for degenerate rectangles.
func Lookup(r geom.RectSpec, pos geom.Vec) (Anchor, bool) {
	if r.Degenerate() {
		return 0, false
	}

	d := Dir(r, pos)
	sx, ok := snap(d.X)
	if !ok {
		return 0, false
	}
	sy, ok := snap(d.Y)
	if !ok {
		return 0, false
	}
	return FromVec(geom.V(sx, sy))
}

func snap(c float64) (float64, bool) {
	for _, v := range [...]float64{-1, 0, 1} {
		if math.Abs(c-v) <= lookupEpsilon {
			return v, true
		}
	}
	return 0, false
}

// Positions returns the position of every anchor of r, indexed by
// Anchor.
func Positions(r geom.RectSpec) (pos [Count]geom.Vec) {
	for i, a := range xiter.Enumerate(All()) {
		pos[i] = Pos(r, a.Vec())
	}
	return pos
}

// Nearest returns the anchor of r closest to pos as long as it is no
// further than radius away. Ties go to the anchor that comes first in
// All.
func Nearest(r geom.RectSpec, pos geom.Vec, radius float64) (Anchor, bool) {
	best, found := Anchor(0), false
	bestDist := math.Inf(1)
	for a, p := range Positions(r) {
		dist := p.Dist(pos)
		if dist > radius || dist >= bestDist {
			continue
		}
		best, bestDist, found = Anchor(a), dist, true
	}
	return best, found
}
