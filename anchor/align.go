package anchor

import "deedles.dev/xrect/geom"

// Aligned constrains target to the axes that an anchor with direction
// dir is allowed to move along, using alignPos as the reference for
// the locked axes.
//
// The offset from alignPos is multiplied by dir twice. Components of
// dir are in {-1, 0, 1}, so the square is 0 on a locked axis, pinning
// it to alignPos, and 1 on a free axis regardless of its sign.
func Aligned(target, alignPos, dir geom.Vec) geom.Vec {
	return alignPos.Add(target.Sub(alignPos).Mul(dir).Mul(dir))
}
