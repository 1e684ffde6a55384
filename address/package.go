// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package address converts points in the unit square or unit cube to
// fixed-length hierarchical cell addresses, and cell addresses back to
// the bounding boxes of the cells they name.
//
// An address is built by recursively bisecting the domain [0,1) on
// every axis. Each level contributes one symbol which records the half
// of every axis the point falls in, so an address of length n names a
// cell whose edges are 2^-n long. Addresses sharing a prefix name
// cells sharing the ancestor cell named by that prefix.
//
// Two-dimensional addresses use the alphabet ABCD:
//
//	+---+---+
//	| A | B |   y upper half
//	+---+---+
//	| C | D |   y lower half
//	+---+---+
//	 x lo  x hi
//
// Three-dimensional addresses use the alphabet ABCDEFGH. The symbols
// A-D are the quadrants above in the front half (z upper half) and E-H
// are the same quadrants in the back half (z lower half).
package address
