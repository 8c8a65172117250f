package anchor_test

import (
	"testing"

	"deedles.dev/xrect/anchor"
	"deedles.dev/xrect/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func requireApprox[T any](t *testing.T, want, got T) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		require.Fail(t, "mismatch (-want +got)", diff)
	}
}

func TestTransform(t *testing.T) {
	centered := geom.FromCorners(-5, 3.5, 5, -3.5)

	tests := []struct {
		name   string
		old    geom.RectSpec
		anchor anchor.Anchor
		to     geom.Vec
		want   geom.RectSpec
	}{
		{
			name:   "CornerFlipY",
			old:    geom.RectSpec{X: 0, Y: 0, Width: 10, Height: 10},
			anchor: anchor.BottomRight,
			to:     geom.V(6, 6),
			want:   geom.RectSpec{X: 0.5, Y: 5.5, Width: 11, Height: 1},
		},
		{
			name:   "CornerShrink",
			old:    geom.RectSpec{X: 5, Y: -5, Width: 10, Height: 10},
			anchor: anchor.BottomRight,
			to:     geom.V(6, 6),
			want:   geom.RectSpec{X: 3, Y: 3, Width: 6, Height: 6},
		},
		{
			name:   "RightGrow",
			old:    geom.RectSpec{X: 0, Y: 0, Width: 10, Height: 7},
			anchor: anchor.Right,
			to:     geom.V(8, 0),
			want:   geom.RectSpec{X: 1.5, Y: 0, Width: 13, Height: 7},
		},
		{
			name:   "RightIgnoresY",
			old:    geom.RectSpec{X: 0, Y: 0, Width: 10, Height: 7},
			anchor: anchor.Right,
			to:     geom.V(8, 1),
			want:   geom.RectSpec{X: 1.5, Y: 0, Width: 13, Height: 7},
		},
		{
			name:   "CornersFlipY",
			old:    geom.FromCorners(-5, 5, 5, -5),
			anchor: anchor.BottomRight,
			to:     geom.V(6, 6),
			want:   geom.FromCorners(-5, 6, 6, 5),
		},
		{
			name:   "CornersOffsetOrigin",
			old:    geom.FromCorners(0, 0, 10, -10),
			anchor: anchor.BottomRight,
			to:     geom.V(6, 6),
			want:   geom.FromCorners(0, 6, 6, 0),
		},
		{
			name:   "RightTranslated",
			old:    geom.FromCorners(-5+13, 3.5+13, 5+13, -3.5+13),
			anchor: anchor.Right,
			to:     geom.V(8+13, 0),
			want:   geom.FromCorners(-5+13, 3.5+13, 8+13, -3.5+13),
		},
		{"RightGrowCorners", centered, anchor.Right, geom.V(8, 0), geom.FromCorners(-5, 3.5, 8, -3.5)},
		{"RightShrink", centered, anchor.Right, geom.V(2, 0), geom.FromCorners(-5, 3.5, 2, -3.5)},
		{"RightFlip", centered, anchor.Right, geom.V(-6, 0), geom.FromCorners(-6, 3.5, -5, -3.5)},
		{"LeftGrow", centered, anchor.Left, geom.V(-8, 0), geom.FromCorners(-8, 3.5, 5, -3.5)},
		{"LeftShrink", centered, anchor.Left, geom.V(-2, 0), geom.FromCorners(-2, 3.5, 5, -3.5)},
		{"LeftFlip", centered, anchor.Left, geom.V(6, 0), geom.FromCorners(5, 3.5, 6, -3.5)},
		{"TopGrow", centered, anchor.Top, geom.V(0, 8), geom.FromCorners(-5, 8, 5, -3.5)},
		{"TopShrink", centered, anchor.Top, geom.V(0, 2), geom.FromCorners(-5, 2, 5, -3.5)},
		{"TopFlip", centered, anchor.Top, geom.V(0, -6), geom.FromCorners(-5, -3.5, 5, -6)},
		{"BottomGrow", centered, anchor.Bottom, geom.V(0, -8), geom.FromCorners(-5, 3.5, 5, -8)},
		{"BottomShrink", centered, anchor.Bottom, geom.V(0, -2), geom.FromCorners(-5, 3.5, 5, -2)},
		{"BottomFlip", centered, anchor.Bottom, geom.V(0, 6), geom.FromCorners(-5, 6, 5, 3.5)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := anchor.TransformAnchor(test.old, test.anchor, test.to)
			requireApprox(t, test.want, got)
		})
	}
}

func TestTransformEdgeKeepsOtherExtent(t *testing.T) {
	old := geom.RectSpec{X: 2, Y: -1, Width: 6, Height: 3}
	for _, a := range []anchor.Anchor{anchor.Top, anchor.Bottom} {
		for _, x := range []float64{-100, 0, 3.3, 1e6} {
			got := anchor.TransformAnchor(old, a, geom.V(x, 7))
			require.Equal(t, old.Width, got.Width)
			require.Equal(t, old.X, got.X)
		}
	}
	for _, a := range []anchor.Anchor{anchor.Left, anchor.Right} {
		for _, y := range []float64{-100, 0, 3.3, 1e6} {
			got := anchor.TransformAnchor(old, a, geom.V(7, y))
			require.Equal(t, old.Height, got.Height)
			require.Equal(t, old.Y, got.Y)
		}
	}
}

func TestTransformPivot(t *testing.T) {
	old := geom.RectSpec{X: 1, Y: 2, Width: 8, Height: 6}
	targets := []geom.Vec{
		geom.V(0, 0),
		geom.V(20, -20),
		geom.V(-20, 20),
		geom.V(1, 2),
		geom.V(4.75, -3.25),
	}
	for a := range anchor.All() {
		pivot := anchor.Pos(old, a.Opposite().Vec())
		for _, to := range targets {
			got := anchor.TransformAnchor(old, a, to)
			require.GreaterOrEqual(t, got.Width, 0.0)
			require.GreaterOrEqual(t, got.Height, 0.0)

			flipped := anchor.Flipped(old, a.Vec(), to)
			requireApprox(t, pivot, anchor.Pos(got, flipped.Neg()))
		}
	}
}

func TestTransformPivotWithoutFlip(t *testing.T) {
	old := geom.RectSpec{X: 0, Y: 0, Width: 10, Height: 10}
	for a := range anchor.All() {
		// Pull every anchor further out, so nothing crosses the pivot.
		to := anchor.Pos(old, a.Vec()).Add(a.Vec().Mul(geom.V(3, 3)))
		got := anchor.TransformAnchor(old, a, to)

		require.Equal(t, a.Vec(), anchor.Flipped(old, a.Vec(), to))
		requireApprox(t, anchor.Pos(old, a.Opposite().Vec()), anchor.Pos(got, a.Opposite().Vec()))
	}
}

func TestTransformDegenerate(t *testing.T) {
	old := geom.RectSpec{X: 3, Y: 3}
	got := anchor.TransformAnchor(old, anchor.TopRight, geom.V(5, 0))
	requireApprox(t, geom.RectSpec{X: 4, Y: 1.5, Width: 2, Height: 3}, got)

	got = anchor.TransformAnchor(old, anchor.Top, geom.V(5, 3))
	requireApprox(t, geom.RectSpec{X: 3, Y: 3, Width: 0, Height: 0}, got)
}

func TestFlipped(t *testing.T) {
	old := geom.RectSpec{X: 0, Y: 0, Width: 10, Height: 10}

	require.Equal(t, anchor.TopRight.Vec(), anchor.Flipped(old, anchor.BottomRight.Vec(), geom.V(6, 6)))
	require.Equal(t, anchor.BottomLeft.Vec(), anchor.Flipped(old, anchor.BottomRight.Vec(), geom.V(-6, -6)))
	require.Equal(t, anchor.Left.Vec(), anchor.Flipped(old, anchor.Right.Vec(), geom.V(-6, 40)))

	// Landing exactly on the pivot keeps the original direction.
	require.Equal(t, anchor.Right.Vec(), anchor.Flipped(old, anchor.Right.Vec(), geom.V(-5, 0)))
}
