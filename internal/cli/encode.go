// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gogama/cellcode/address"
	"github.com/spf13/cobra"
)

// EncodeResult is the output of the encode command.
type EncodeResult struct {
	Point   address.Point `json:"point"`
	Address string        `json:"address"`
}

func (r EncodeResult) String() string {
	return r.Address
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode X Y [Z]",
		Short: "Print the address of the cell containing a point",
		Long: `Print the address of the cell containing a point.

Finite coordinates outside [0,1) are clamped into the domain. NaN and
infinite coordinates are rejected.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(opts.dim(), args)
			if err != nil {
				return err
			}
			c := address.New(opts.dim(), opts.Depth)
			return opts.formatter(cmd).Success(EncodeResult{Point: p, Address: c.Encode(p)})
		},
	}
}

func parsePoint(dim address.Dim, args []string) (address.Point, error) {
	if len(args) != int(dim) {
		return nil, NewExitError(ExitInvalidInput, fmt.Sprintf("%s point needs %d coordinates, got %d", dim, int(dim), len(args)))
	}
	p := make(address.Point, len(args))
	for i, arg := range args {
		v, err := parseCoordinate(arg)
		if err != nil {
			return nil, WrapExitError(ExitInvalidInput, fmt.Sprintf("invalid coordinate %q", arg), err)
		}
		p[i] = v
	}
	return p, nil
}

// parseCoordinate parses a finite float64. NaN and infinities would
// encode, but cannot be written back out as JSON.
func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}
