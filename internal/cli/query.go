// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/gogama/cellcode"
	"github.com/gogama/cellcode/address"
	"github.com/spf13/cobra"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	Records []string
	Exact   []string
	Prefix  []string
	Region  []string
}

// QueryResult is the output of one query.
type QueryResult struct {
	Query string `json:"query"` // "exact" | "prefix" | "region"
	Arg   string `json:"arg"`
	Items []any  `json:"items"`
}

func (r QueryResult) String() string {
	return fmt.Sprintf("%s %s: %v", r.Query, r.Arg, r.Items)
}

// QueryResults is the output of the query command.
type QueryResults []QueryResult

func (rs QueryResults) String() string {
	lines := make([]string, len(rs))
	for i := range rs {
		lines[i] = rs[i].String()
	}
	return strings.Join(lines, "\n")
}

// NewQueryCommand creates the query command.
func NewQueryCommand(root *RootOptions) *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Load records into a store and query it",
		Long: `Load records into a store and run exact, prefix and region queries.

Records come from the configuration file and from every --records file,
in that order. Each record has either a point or an address, plus data:

  - point: [0.6, 0.7]
    data: Object 2
  - address: DAD
    data: Object 3

Queries run in the order exact, prefix, region. A region is given as
per-axis bound pairs, x0,x1,y0,y1 in 2D or x0,x1,y0,y1,z0,z1 in 3D.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, root, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Records, "records", "r", nil, "YAML records file (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Exact, "exact", nil, "exact address query (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Prefix, "prefix", nil, "address prefix query (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Region, "region", nil, "region query x0,x1,y0,y1[,z0,z1] (repeatable)")

	return cmd
}

func runQuery(cmd *cobra.Command, root *RootOptions, opts *QueryOptions) error {
	records := append([]Record(nil), root.records...)
	for _, path := range opts.Records {
		rs, err := LoadRecords(path)
		if err != nil {
			return WrapExitError(ExitInvalidInput, "invalid records", err)
		}
		records = append(records, rs...)
	}

	regions := make([]address.Box, len(opts.Region))
	for i, arg := range opts.Region {
		b, err := parseRegion(root.dim(), arg)
		if err != nil {
			return err
		}
		regions[i] = b
	}

	s := cellcode.New(root.dim(), cellcode.WithDepth(root.Depth), cellcode.WithLogger(root.logger))
	if err := load(s, records); err != nil {
		return err
	}
	root.logger.Info("records loaded", "records", len(records), "addresses", s.Len())

	var rs QueryResults
	for _, addr := range opts.Exact {
		rs = append(rs, QueryResult{Query: "exact", Arg: addr, Items: s.Exact(addr)})
	}
	for _, prefix := range opts.Prefix {
		rs = append(rs, QueryResult{Query: "prefix", Arg: prefix, Items: s.Prefix(prefix)})
	}
	for _, b := range regions {
		rs = append(rs, QueryResult{Query: "region", Arg: b.String(), Items: s.Region(b)})
	}
	if rs == nil {
		rs = QueryResults{}
	}
	return root.formatter(cmd).Success(rs)
}

// load inserts every record into the store. A record whose point has
// the wrong number of coordinates or whose address is invalid stops
// the load.
func load(s *cellcode.Store, records []Record) error {
	for i := range records {
		r := &records[i]
		if r.Address != "" {
			if err := s.InsertAddress(r.Address, r.Data); err != nil {
				return WrapExitError(ExitInvalidInput, fmt.Sprintf("record %d", i), err)
			}
			continue
		}
		if len(r.Point) != int(s.Dim()) {
			return NewExitError(ExitInvalidInput, fmt.Sprintf("record %d: %s point needs %d coordinates, got %d", i, s.Dim(), int(s.Dim()), len(r.Point)))
		}
		s.InsertPoint(r.Point, r.Data)
	}
	return nil
}

func parseRegion(dim address.Dim, arg string) (address.Box, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2*int(dim) {
		return address.Box{}, NewExitError(ExitInvalidInput, fmt.Sprintf("invalid region %q: %s region needs %d bounds", arg, dim, 2*int(dim)))
	}
	b := address.Box{Min: make(address.Point, dim), Max: make(address.Point, dim)}
	for i, part := range parts {
		v, err := parseCoordinate(strings.TrimSpace(part))
		if err != nil {
			return address.Box{}, WrapExitError(ExitInvalidInput, fmt.Sprintf("invalid region %q", arg), err)
		}
		if i%2 == 0 {
			b.Min[i/2] = v
		} else {
			b.Max[i/2] = v
		}
	}
	return b, nil
}
