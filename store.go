// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cellcode

import (
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/gogama/cellcode/address"
)

// Store indexes data items by cell address. Each distinct address
// holds an ordered list of items, created on the first insert to that
// address. Entries are never removed.
//
// Items are stored as given: the Store never copies what an item
// points to, so a pointer item inserted into a Store aliases the
// caller's value.
type Store struct {
	codec *address.Codec
	cells map[string][]any
	log   *slog.Logger
}

// New creates an empty Store over the address space of dimension dim.
// Panics if dim is not address.D2 or address.D3, or if the configured
// depth is less than 1.
func New(dim address.Dim, opts ...Option) *Store {
	o := options{depth: DefaultDepth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.depth < 1 {
		fmtPanic("depth must be at least 1, got %d", o.depth)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		codec: address.New(dim, o.depth),
		cells: make(map[string][]any),
		log:   o.logger,
	}
}

// Dim returns the dimension of the Store's address space.
func (s *Store) Dim() address.Dim {
	return s.codec.Dim()
}

// Depth returns the length of every address in the Store.
func (s *Store) Depth() int {
	return s.codec.Depth()
}

// Codec returns the codec the Store uses to encode points.
func (s *Store) Codec() *address.Codec {
	return s.codec
}

// Len returns the number of distinct addresses holding at least one
// item.
func (s *Store) Len() int {
	return len(s.cells)
}

// Count returns the number of items stored at an exact address.
func (s *Store) Count(addr string) int {
	return len(s.cells[addr])
}

// Addresses returns every address holding at least one item, in
// ascending order.
func (s *Store) Addresses() []string {
	addrs := make([]string, 0, len(s.cells))
	for addr := range s.cells {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	return addrs
}

// InsertPoint appends data to the items of the cell containing p and
// returns the cell's address. Coordinates outside the unit domain are
// clamped into it, so InsertPoint always succeeds. Panics if p does
// not have one coordinate per axis.
func (s *Store) InsertPoint(p address.Point, data any) string {
	addr := s.codec.Encode(p)
	s.add(addr, data)
	s.log.Debug("inserted item", "address", addr, "point", p, "count", len(s.cells[addr]))
	return addr
}

// InsertAddress appends data to the items of the cell named by addr.
// The address must have exactly the Store's depth and contain only
// alphabet symbols; otherwise InsertAddress returns an error matching
// address.ErrInvalidAddress and leaves the Store unchanged.
func (s *Store) InsertAddress(addr string, data any) error {
	if err := s.codec.Validate(addr); err != nil {
		s.log.Debug("rejected address", "address", addr, "error", err)
		return err
	}
	s.add(addr, data)
	s.log.Debug("inserted item", "address", addr, "count", len(s.cells[addr]))
	return nil
}

func (s *Store) add(addr string, data any) {
	s.cells[addr] = append(s.cells[addr], data)
}

// Exact returns the items stored at addr in insertion order, or an
// empty slice if there are none. The address is not validated: a
// malformed address simply matches nothing. The returned slice is a
// copy and may be modified freely.
func (s *Store) Exact(addr string) []any {
	items := s.cells[addr]
	out := make([]any, len(items))
	copy(out, items)
	return out
}

// Prefix returns the items of every address which begins with prefix.
// The match is a literal string prefix match, so the empty prefix
// matches every address and a prefix longer than the Store's depth
// matches nothing.
func (s *Store) Prefix(prefix string) []any {
	return s.PrefixEntries(prefix).Items()
}

// PrefixEntries is like Prefix but keeps the items grouped by address.
func (s *Store) PrefixEntries(prefix string) Entries {
	es := make(Entries, 0)
	for addr, items := range s.cells {
		if strings.HasPrefix(addr, prefix) {
			es = append(es, Entry{Address: addr, Items: slices.Clone(items)})
		}
	}
	sort.Sort(es)
	s.log.Debug("prefix query", "prefix", prefix, "scanned", len(s.cells), "matched", len(es))
	return es
}

// Region returns the items of every cell whose bounding box overlaps
// q. Overlap is strict on every axis, so a cell which only touches q
// along a face, edge or corner does not match. Panics if q does not
// have the Store's dimension.
func (s *Store) Region(q address.Box) []any {
	return s.RegionEntries(q).Items()
}

// RegionEntries is like Region but keeps the items grouped by address.
func (s *Store) RegionEntries(q address.Box) Entries {
	if q.Dim() != s.Dim() {
		fmtPanic("query box is %s but store is %s", q.Dim(), s.Dim())
	}
	es := make(Entries, 0)
	for addr, items := range s.cells {
		b, err := s.codec.Decode(addr)
		if err != nil {
			panic(err) // Only valid addresses are ever stored.
		}
		if b.Overlaps(q) {
			es = append(es, Entry{Address: addr, Items: slices.Clone(items)})
		}
	}
	sort.Sort(es)
	s.log.Debug("region query", "box", q.String(), "scanned", len(s.cells), "matched", len(es))
	return es
}
