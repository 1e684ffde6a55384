// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cellcode

import "log/slog"

// DefaultDepth is the address length of a Store created without the
// WithDepth option.
const DefaultDepth = 5

// An Option configures a Store at construction time.
type Option func(*options)

type options struct {
	depth  int
	logger *slog.Logger
}

// WithDepth sets the number of subdivision levels, which is also the
// length of every address in the Store. New panics if n is less than 1.
func WithDepth(n int) Option {
	return func(o *options) {
		o.depth = n
	}
}

// WithLogger sets the logger the Store writes debug records to for
// inserts, rejected addresses and queries. A nil logger discards
// output, which is also the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
