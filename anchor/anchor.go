// Package anchor implements resizing of a geom.RectSpec by dragging
// one of its eight control points.
//
// An anchor is a direction relative to a rectangle's center. The four
// corners have both components set to ±1 and the four edge midpoints
// have exactly one non-zero component. Combined with a rectangle, a
// direction yields a point via Pos. While an anchor is dragged the
// anchor diagonally opposite of it stays fixed and is called the
// pivot.
package anchor

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"deedles.dev/xrect/geom"
)

// ErrUnknownAnchor is returned by Parse for names that do not match
// any anchor.
var ErrUnknownAnchor = errors.New("unknown anchor")

// Anchor identifies one of the eight control points of a rectangle.
// The values are ordered clockwise starting at the top-left corner.
type Anchor uint8

const (
	TopLeft Anchor = iota
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
)

// Count is the number of anchors.
const Count = 8

type entry struct {
	name   string
	dir    geom.Vec
	cursor string
}

// anchors is indexed by Anchor.
var anchors = [Count]entry{
	TopLeft:     {"top-left", geom.V(-1, 1), "top_left_corner"},
	Top:         {"top", geom.V(0, 1), "top_side"},
	TopRight:    {"top-right", geom.V(1, 1), "top_right_corner"},
	Right:       {"right", geom.V(1, 0), "right_side"},
	BottomRight: {"bottom-right", geom.V(1, -1), "bottom_right_corner"},
	Bottom:      {"bottom", geom.V(0, -1), "bottom_side"},
	BottomLeft:  {"bottom-left", geom.V(-1, -1), "bottom_left_corner"},
	Left:        {"left", geom.V(-1, 0), "left_side"},
}

// All returns an iterator over every anchor in clockwise order,
// starting with TopLeft.
func All() iter.Seq[Anchor] {
	return func(yield func(Anchor) bool) {
		for a := range Anchor(Count) {
			if !yield(a) {
				return
			}
		}
	}
}

// Valid reports whether a is one of the eight defined anchors.
func (a Anchor) Valid() bool {
	return a < Count
}

// Vec returns the direction of a. It panics if a is not valid.
func (a Anchor) Vec() geom.Vec {
	return anchors[a].dir
}

func (a Anchor) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
	return anchors[a].name
}

// Cursor returns the name of the X cursor conventionally shown while
// hovering over or dragging a.
func (a Anchor) Cursor() string {
	if !a.Valid() {
		return ""
	}
	return anchors[a].cursor
}

// Opposite returns the anchor diagonally across from a. Its direction
// is the negation of a's.
func (a Anchor) Opposite() Anchor {
	return (a + Count/2) % Count
}

// IsCorner reports whether a is one of the four corners.
func (a Anchor) IsCorner() bool {
	d := a.Vec()
	return d.X != 0 && d.Y != 0
}

// Edges returns the edges of a rectangle that move when a is dragged.
func (a Anchor) Edges() geom.Edges {
	d := a.Vec()

	var e geom.Edges
	switch {
	case d.Y > 0:
		e |= geom.EdgeTop
	case d.Y < 0:
		e |= geom.EdgeBottom
	}
	switch {
	case d.X < 0:
		e |= geom.EdgeLeft
	case d.X > 0:
		e |= geom.EdgeRight
	}
	return e
}

// FromVec returns the anchor whose direction is exactly v.
func FromVec(v geom.Vec) (Anchor, bool) {
	for a := range All() {
		if anchors[a].dir == v {
			return a, true
		}
	}
	return 0, false
}

// Parse returns the anchor with the given name. Matching ignores case
// and separators, so "top-left", "top_left", "TopLeft" and "TOP LEFT"
// all yield TopLeft.
func Parse(name string) (Anchor, error) {
	n := normalize(name)
	for a := range All() {
		if normalize(anchors[a].name) == n {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAnchor, name)
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))
}
