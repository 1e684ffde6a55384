// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command cellcode encodes points to hierarchical cell addresses,
// decodes addresses to cell bounds, and queries data indexed by cell
// address.
package main

import (
	"os"

	"github.com/gogama/cellcode/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
