// Package geom provides the value types used by the resize engine: a
// float 2D vector and a center-based rectangle.
//
// All coordinates are Cartesian. X increases to the east and Y
// increases to the north, so the top of a rectangle has the larger Y
// coordinate. Converting to and from a screen coordinate system is up
// to the caller.
package geom

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the numeric types that can be converted
// into geom values.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether all of the edges in o are set in e.
func (e Edges) Has(o Edges) bool {
	return e&o == o
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var parts []string
	for _, edge := range [...]struct {
		e    Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e&edge.e != 0 {
			parts = append(parts, edge.name)
		}
	}
	return strings.Join(parts, "|")
}
