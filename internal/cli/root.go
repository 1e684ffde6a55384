// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the cellcode command line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/gogama/cellcode"
	"github.com/gogama/cellcode/address"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Dim     int
	Depth   int
	Format  string // "text" | "json"
	Verbose bool
	Config  string

	records []Record
	logger  *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the cellcode CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cellcode",
		Short:         "Hierarchical cell addresses for points in the unit square and cube",
		Long:          "Encode points to cell addresses, decode addresses to cell bounds, and query data indexed by address.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().IntVarP(&opts.Dim, "dim", "d", int(address.D2), "number of dimensions (2|3)")
	cmd.PersistentFlags().IntVar(&opts.Depth, "depth", cellcode.DefaultDepth, "address length")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging to stderr")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "YAML configuration file")

	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))

	return cmd
}

// Execute runs the cellcode CLI with args and returns the process exit
// code. A failed command is reported through the output formatter: as
// a JSON error document on stdout with --format json, unless the
// command already wrote its result there, and as text on stderr
// otherwise.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	out := &trackingWriter{w: stdout}
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	code := GetExitCode(err)
	f := &OutputFormatter{Format: "text", Writer: stdout, ErrWriter: stderr}
	if opts.Format == "json" {
		if out.written {
			return code
		}
		f.Format = "json"
	}
	if ferr := f.Error(errorCode(code), err.Error()); ferr != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return code
}

// errorCode names an exit code in error output.
func errorCode(code int) string {
	if code == ExitInvalidInput {
		return "invalid_input"
	}
	return "failure"
}

type trackingWriter struct {
	w       io.Writer
	written bool
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	t.written = t.written || len(p) > 0
	return t.w.Write(p)
}

// setup applies the configuration file, validates the global flags and
// sets up logging. Flags set on the command line win over the file.
func (opts *RootOptions) setup(cmd *cobra.Command) error {
	if opts.Config != "" {
		c, err := LoadConfig(opts.Config)
		if err != nil {
			return WrapExitError(ExitInvalidInput, "invalid configuration", err)
		}
		if c.Dim != 0 && !flagChanged(cmd, "dim") {
			opts.Dim = c.Dim
		}
		if c.Depth != 0 && !flagChanged(cmd, "depth") {
			opts.Depth = c.Depth
		}
		if c.Format != "" && !flagChanged(cmd, "format") {
			opts.Format = c.Format
		}
		if c.Verbose && !flagChanged(cmd, "verbose") {
			opts.Verbose = true
		}
		opts.records = c.Records
	}

	if !slices.Contains(ValidFormats, opts.Format) {
		return NewExitError(ExitInvalidInput, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	if d := address.Dim(opts.Dim); d != address.D2 && d != address.D3 {
		return NewExitError(ExitInvalidInput, fmt.Sprintf("invalid dim %d: must be 2 or 3", opts.Dim))
	}
	if opts.Depth < 1 {
		return NewExitError(ExitInvalidInput, fmt.Sprintf("invalid depth %d: must be at least 1", opts.Depth))
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

func (opts *RootOptions) dim() address.Dim {
	return address.Dim(opts.Dim)
}

func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}
