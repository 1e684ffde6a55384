// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package address

import "strconv"

// Dim is the number of axes of an address space. Only D2 and D3 are
// supported.
type Dim int

const (
	// D2 is the two-dimensional address space over the unit square,
	// with addresses drawn from the alphabet ABCD.
	D2 Dim = 2
	// D3 is the three-dimensional address space over the unit cube,
	// with addresses drawn from the alphabet ABCDEFGH.
	D3 Dim = 3
)

// Axis indices into a Point or a Box bound.
const (
	X = 0
	Y = 1
	Z = 2
)

// maxDim is the largest supported Dim. It sizes the fixed arrays used
// to avoid allocation in the encode and decode loops.
const maxDim = int(D3)

// alphabet holds every symbol of the largest address space. Smaller
// address spaces use a prefix of it.
const alphabet = "ABCDEFGH"

// Symbols returns the number of distinct symbols in the address
// alphabet, which is 2^d.
func (d Dim) Symbols() int {
	d.check()
	return 1 << d
}

// Alphabet returns the symbols which may appear in an address, in
// symbol index order.
func (d Dim) Alphabet() string {
	return alphabet[:d.Symbols()]
}

// String returns "2D" or "3D".
func (d Dim) String() string {
	return strconv.Itoa(int(d)) + "D"
}

func (d Dim) valid() bool {
	return d == D2 || d == D3
}

func (d Dim) check() {
	if !d.valid() {
		fmtPanic("unsupported dimension %d (must be 2 or 3)", int(d))
	}
}

func (d Dim) checkPoint(p Point) {
	if len(p) != int(d) {
		fmtPanic("point has %d coordinates, %s requires %d", len(p), d, int(d))
	}
}

// quadrant returns the index of the two-dimensional symbol for a pair
// of half-space bits. The four quadrants are ordered row-major from the
// top left: the upper y half (yBit=1) is the top row and the upper x
// half (xBit=1) is the right column.
func quadrant(yBit, xBit uint8) int {
	return int(1-yBit)*2 + int(xBit)
}

// octant returns the index of the three-dimensional symbol for a
// triple of half-space bits. The z bit selects the front group
// (zBit=1) or the back group (zBit=0), front first, and the embedded
// quadrant picks the symbol within the group.
func octant(zBit, yBit, xBit uint8) int {
	return int(1-zBit)*4 + quadrant(yBit, xBit)
}

// symbol maps one half-space bit per axis to the address symbol.
func (d Dim) symbol(bits *[maxDim]uint8) byte {
	if d == D3 {
		return alphabet[octant(bits[Z], bits[Y], bits[X])]
	}
	return alphabet[quadrant(bits[Y], bits[X])]
}

// halves is the inverse of symbol. It stores the half-space bit for
// every axis into bits and returns false if s is not in the alphabet.
func (d Dim) halves(s byte, bits *[maxDim]uint8) bool {
	i := int(s) - 'A'
	if i < 0 || i >= 1<<d {
		return false
	}
	if d == D3 {
		bits[Z] = uint8(1 - i/4)
		i %= 4
	}
	bits[Y] = uint8(1 - i/2)
	bits[X] = uint8(i % 2)
	return true
}

func (d Dim) isSymbol(s byte) bool {
	return s >= 'A' && int(s-'A') < 1<<d
}
