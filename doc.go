// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cellcode indexes arbitrary data by hierarchical cell address
// and retrieves it by exact address, by address prefix, or by
// axis-aligned region.
//
// Addresses are produced by the address subpackage: a point in the unit
// square (or cube) maps to the fixed-length address of the cell which
// contains it, and every prefix of that address names an ancestor
// cell. A Store keeps one list of data items per distinct address.
//
// # Query cost
//
// Store is a flat map from address to items. Prefix and Region inspect
// every distinct stored address on every call, so their cost is linear
// in Store.Len, not in the address depth. There is no tree to traverse
// and nothing to rebalance. Exact is a single map lookup.
//
// # Ordering
//
// Prefix and Region return items grouped by address, with addresses in
// ascending lexicographic order and the items of each address in
// insertion order.
//
// # Concurrency
//
// A Store is not safe for concurrent use. Callers sharing a Store
// between goroutines must serialize access themselves.
package cellcode
