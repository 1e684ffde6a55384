// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/gogama/cellcode/address"
	"github.com/spf13/cobra"
)

// DecodeResult is the output of the decode command for one address.
// Either Error is set, or Min and Max hold the cell bounds.
type DecodeResult struct {
	Address string        `json:"address"`
	Min     address.Point `json:"min,omitempty"`
	Max     address.Point `json:"max,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func (r DecodeResult) String() string {
	if r.Error != "" {
		return r.Address + " error: " + r.Error
	}
	return r.Address + " " + address.Box{Min: r.Min, Max: r.Max}.String()
}

// DecodeResults is the output of the decode command.
type DecodeResults []DecodeResult

func (rs DecodeResults) String() string {
	lines := make([]string, len(rs))
	for i := range rs {
		lines[i] = rs[i].String()
	}
	return strings.Join(lines, "\n")
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode ADDRESS...",
		Short: "Print the bounds of the cells named by addresses",
		Long: `Print the bounds of the cells named by addresses, as per-axis
[min,max) pairs.

Addresses of any length are accepted. An address containing a symbol
outside the alphabet is reported and the remaining addresses are still
decoded; the command then exits with status 2.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs := make(DecodeResults, len(args))
			var failed int
			for i, addr := range args {
				rs[i].Address = addr
				b, err := address.Decode(opts.dim(), addr)
				if err != nil {
					opts.logger.Debug("decode failed", "address", addr, "error", err)
					rs[i].Error = err.Error()
					failed++
					continue
				}
				rs[i].Min, rs[i].Max = b.Min, b.Max
			}
			if err := opts.formatter(cmd).Success(rs); err != nil {
				return err
			}
			if failed > 0 {
				return NewExitError(ExitInvalidInput, fmt.Sprintf("%d of %d addresses invalid", failed, len(args)))
			}
			return nil
		},
	}
}
