// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cellcode

import (
	"strconv"
	"strings"
)

// Entry is one stored address together with its items.
type Entry struct {
	// Address is the cell address.
	Address string
	// Items are the data items stored at Address, in insertion order.
	Items []any
}

// String returns a summary of the entry giving the address and item
// count.
func (e Entry) String() string {
	return "Entry{" + e.Address + ",Items:" + strconv.Itoa(len(e.Items)) + "}"
}

// Entries is a slice of Entry structures which implements
// sort.Interface. The sort.Sort function will sort Entries in
// ascending order of Entry.Address.
type Entries []Entry

// Len returns the length of the slice. It implements the corresponding
// method of sort.Interface.
func (es Entries) Len() int {
	return len(es)
}

// Less establishes an absolute ordering by ascending order of
// Entry.Address. It implements the corresponding method of
// sort.Interface.
func (es Entries) Less(i, j int) bool {
	return es[i].Address < es[j].Address
}

// Swap swaps two elements of the slice. It implements the corresponding
// method of sort.Interface.
func (es Entries) Swap(i, j int) {
	es[i], es[j] = es[j], es[i]
}

// Items concatenates the items of every entry, in slice order. The
// result is never nil.
func (es Entries) Items() []any {
	var n int
	for i := range es {
		n += len(es[i].Items)
	}
	items := make([]any, 0, n)
	for i := range es {
		items = append(items, es[i].Items...)
	}
	return items
}

// String returns the entries in the form "[Entry{AAD,Items:1} ...]".
func (es Entries) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range es {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(es[i].String())
	}
	b.WriteByte(']')
	return b.String()
}
