// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package address

import (
	"strconv"
	"strings"
)

// Point is a location with one coordinate per axis, in X, Y, Z order.
type Point []float64

// Box is an axis-aligned box. Min and Max hold the lower and upper
// bound of every axis and always have the same length, which is the
// box's dimension.
//
// The boxes returned by Decode are half-open cells: a point is inside
// a cell if Min[i] <= p[i] < Max[i] on every axis.
type Box struct {
	Min Point
	Max Point
}

// Domain returns the whole unit domain [0,1) for a dimension.
func Domain(d Dim) Box {
	d.check()
	b := Box{Min: make(Point, d), Max: make(Point, d)}
	for i := range b.Max {
		b.Max[i] = 1
	}
	return b
}

// Dim returns the number of axes of the box.
func (b Box) Dim() Dim {
	return Dim(len(b.Min))
}

// Width returns the extent of the box along an axis.
func (b Box) Width(axis int) float64 {
	return b.Max[axis] - b.Min[axis]
}

// Contains reports whether p is inside the box under the half-open
// convention. Panics if p does not have one coordinate per axis.
func (b Box) Contains(p Point) bool {
	b.Dim().checkPoint(p)
	for i := range p {
		if p[i] < b.Min[i] || p[i] >= b.Max[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether the interiors of two boxes intersect. Both
// comparisons are strict, so boxes which only share a face, edge or
// corner do not overlap. Panics if the boxes have different dimensions.
func (b Box) Overlaps(o Box) bool {
	b.checkSameDim(o)
	for i := range b.Min {
		if !(b.Min[i] < o.Max[i] && b.Max[i] > o.Min[i]) {
			return false
		}
	}
	return true
}

// ContainsBox reports whether o lies entirely within b, boundaries
// included. Panics if the boxes have different dimensions.
func (b Box) ContainsBox(o Box) bool {
	b.checkSameDim(o)
	for i := range b.Min {
		if o.Min[i] < b.Min[i] || o.Max[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// String formats the box as its per-axis bound pairs, for example
// "[0.5,0.625,0.625,0.75]" for a 2D box with x in [0.5,0.625) and y in
// [0.625,0.75).
func (b Box) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range b.Min {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(b.Min[i], 'g', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(b.Max[i], 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (b Box) checkSameDim(o Box) {
	if len(b.Min) != len(o.Min) {
		fmtPanic("dimension mismatch (%d vs. %d)", len(b.Min), len(o.Min))
	}
}

// bisect narrows the box on one axis to its upper half if bit is 1, or
// to its lower half if bit is 0.
func (b *Box) bisect(axis int, bit uint8) {
	mid := (b.Min[axis] + b.Max[axis]) / 2
	if bit == 1 {
		b.Min[axis] = mid
	} else {
		b.Max[axis] = mid
	}
}
