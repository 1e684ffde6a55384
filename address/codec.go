// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package address

import "unicode/utf8"

// Epsilon is the margin kept between a coordinate and the upper bound
// of its cell while encoding. Clamping every coordinate to at most
// Max-Epsilon forces points on the upper edge of the domain into the
// lower half and absorbs floating-point drift from repeated
// bisection.
const Epsilon = 1e-10

// A Codec converts points to addresses of a fixed depth, and addresses
// back to cell bounding boxes, for one dimension. A Codec holds no
// mutable state and is safe for concurrent use.
type Codec struct {
	dim   Dim
	depth int
}

// New returns a Codec producing addresses of length depth. Panics if
// dim is not D2 or D3, or if depth is less than 1.
func New(dim Dim, depth int) *Codec {
	dim.check()
	if depth < 1 {
		fmtPanic("depth must be at least 1, got %d", depth)
	}
	return &Codec{dim: dim, depth: depth}
}

// Dim returns the dimension of the codec's address space.
func (c *Codec) Dim() Dim {
	return c.dim
}

// Depth returns the length of the addresses the codec produces.
func (c *Codec) Depth() int {
	return c.depth
}

// Encode returns the address of the cell containing p. Coordinates
// outside [0,1) are clamped into the domain rather than rejected, so
// Encode always succeeds. A NaN coordinate is treated as the lower
// bound of its axis at every level, so it always takes the lower half
// (x = 0 maps to the left column, y = 0 to the bottom row). Panics if p
// does not have one coordinate per axis.
func (c *Codec) Encode(p Point) string {
	c.dim.checkPoint(p)

	n := int(c.dim)
	var v, lo, hi [maxDim]float64
	copy(v[:], p)
	for a := 0; a < n; a++ {
		hi[a] = 1
	}

	var bits [maxDim]uint8
	addr := make([]byte, c.depth)
	for i := range addr {
		for a := 0; a < n; a++ {
			v[a] = clamp(v[a], lo[a], hi[a]-Epsilon)
			mid := (lo[a] + hi[a]) / 2
			if v[a] >= mid {
				bits[a] = 1
				lo[a] = mid
			} else {
				bits[a] = 0
				hi[a] = mid
			}
		}
		addr[i] = c.dim.symbol(&bits)
	}
	return string(addr)
}

// Decode returns the bounding box of the cell named by addr. The
// length of addr is not checked: a shorter address names a larger
// ancestor cell, and the empty address names the whole domain. Returns
// an *InvalidAddressError if addr contains a symbol outside the
// alphabet.
func (c *Codec) Decode(addr string) (Box, error) {
	return decode(c.dim, addr)
}

// Validate checks that addr has exactly the codec's depth and consists
// only of alphabet symbols. Returns an *InvalidAddressError otherwise.
func (c *Codec) Validate(addr string) error {
	if len(addr) != c.depth {
		return &InvalidAddressError{Address: addr, Want: c.depth, Got: len(addr)}
	}
	for i := 0; i < len(addr); i++ {
		if !c.dim.isSymbol(addr[i]) {
			return illegalSymbol(addr, i)
		}
	}
	return nil
}

// Encode is shorthand for New(dim, depth).Encode(p).
func Encode(dim Dim, depth int, p Point) string {
	return New(dim, depth).Encode(p)
}

// Decode returns the bounding box of the cell named by addr in the
// address space of dimension dim. See Codec.Decode.
func Decode(dim Dim, addr string) (Box, error) {
	dim.check()
	return decode(dim, addr)
}

func decode(dim Dim, addr string) (Box, error) {
	b := Domain(dim)
	var bits [maxDim]uint8
	for i := 0; i < len(addr); i++ {
		if !dim.halves(addr[i], &bits) {
			return Box{}, illegalSymbol(addr, i)
		}
		for a := range b.Min {
			b.bisect(a, bits[a])
		}
	}
	return b, nil
}

// illegalSymbol reports the symbol starting at byte offset pos of addr.
func illegalSymbol(addr string, pos int) *InvalidAddressError {
	r, _ := utf8.DecodeRuneInString(addr[pos:])
	return &InvalidAddressError{Address: addr, Symbol: r, Pos: pos, Got: len(addr)}
}

// clamp limits v to [lo, hi]. When the cell is narrower than Epsilon,
// hi falls below lo and the lower bound wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if !(v >= lo) {
		v = lo
	}
	return v
}
