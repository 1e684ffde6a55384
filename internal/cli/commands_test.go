// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"testing"

	"github.com/gogama/cellcode/address"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGolden(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"encode_2d", []string{"encode", "--depth", "3", "0.6", "0.7"}},
		{"encode_3d_json", []string{"encode", "--dim", "3", "--depth", "3", "--format", "json", "0.7", "0.7", "0.8"}},
		{"decode_2d", []string{"decode", "--depth", "3", "BCA", "AAD", "C"}},
		{"query_2d", []string{"query", "--depth", "3", "--records", "testdata/demo2d.yaml", "--exact", "BCA", "--prefix", "B", "--region", "0.5,1,0,0.5"}},
		{"query_3d_json", []string{"query", "-d", "3", "--depth", "3", "--format", "json", "-r", "testdata/demo3d.yaml", "--prefix", "A", "--region", "0,1,0,1,0.5,1"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			stdout, _, err := execute(t, testCase.args...)

			require.NoError(t, err)
			g.Assert(t, testCase.name, []byte(stdout))
		})
	}
}

func TestEncodeCommand(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		testCases := []struct {
			name     string
			args     []string
			expected string
		}{
			{"DefaultDepth", []string{"encode", "0.2", "0.8"}, "AADDA\n"},
			{"Clamped", []string{"encode", "--depth", "2", "--", "-1", "2"}, "AA\n"},
			{"3D", []string{"encode", "--dim", "3", "--depth", "3", "0.1", "0.1", "0.1"}, "GGG\n"},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				stdout, _, err := execute(t, testCase.args...)

				require.NoError(t, err)
				assert.Equal(t, testCase.expected, stdout)
			})
		}
	})

	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name     string
			args     []string
			expected string
		}{
			{"WrongCount", []string{"encode", "--dim", "3", "0.1", "0.2"}, "3D point needs 3 coordinates, got 2"},
			{"NotANumber", []string{"encode", "0.1", "north"}, `invalid coordinate "north": strconv.ParseFloat: parsing "north": invalid syntax`},
			{"NaN", []string{"encode", "--format", "json", "NaN", "0.5"}, `invalid coordinate "NaN": not a finite number`},
			{"Infinity", []string{"encode", "--", "0.5", "-Inf"}, `invalid coordinate "-Inf": not a finite number`},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				_, _, err := execute(t, testCase.args...)

				assert.EqualError(t, err, testCase.expected)
				assert.Equal(t, ExitInvalidInput, GetExitCode(err))
			})
		}
	})
}

func TestDecodeCommand(t *testing.T) {
	t.Run("InvalidAddress", func(t *testing.T) {
		stdout, _, err := execute(t, "decode", "--depth", "3", "BXA", "CCC")

		assert.EqualError(t, err, "1 of 2 addresses invalid")
		assert.Equal(t, ExitInvalidInput, GetExitCode(err))
		assert.Equal(t, "BXA error: address: invalid address \"BXA\": illegal symbol 'X' at position 1\nCCC [0,0.125,0,0.125]\n", stdout)
	})

	t.Run("JSON", func(t *testing.T) {
		stdout, _, err := execute(t, "decode", "--format", "json", "--dim", "3", "E", "Z")

		assert.Equal(t, ExitInvalidInput, GetExitCode(err))
		assert.JSONEq(t, `{
			"status": "ok",
			"data": [
				{"address": "E", "min": [0, 0.5, 0], "max": [0.5, 1, 0.5]},
				{"address": "Z", "error": "address: invalid address \"Z\": illegal symbol 'Z' at position 0"}
			]
		}`, stdout)
	})
}

func TestQueryCommand(t *testing.T) {
	t.Run("NoQueries", func(t *testing.T) {
		stdout, _, err := execute(t, "query", "--depth", "3", "--records", "testdata/demo2d.yaml")

		require.NoError(t, err)
		assert.Equal(t, "\n", stdout)
	})

	t.Run("ExactAddressRecord", func(t *testing.T) {
		path := writeFile(t, "records.yaml", "- address: CCC\n  data: 1\n- address: CCC\n  data: 2\n")

		stdout, _, err := execute(t, "query", "--depth", "3", "-r", path, "-r", "testdata/demo2d.yaml", "--exact", "CCC", "--exact", "AAD", "--prefix", "")

		require.NoError(t, err)
		assert.Equal(t, "exact CCC: [1 2]\nexact AAD: [Object 1]\nprefix : [Object 1 Object 2 1 2 Object 3]\n", stdout)
	})

	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name     string
			records  string
			args     []string
			expected string
		}{
			{
				name:     "InvalidAddress",
				records:  "- address: AB\n  data: x\n",
				expected: `record 0: address: invalid address "AB": length must be 3, got 2`,
			},
			{
				name:     "WrongPointDim",
				records:  "- point: [0.1, 0.2]\n  data: ok\n- point: [0.1, 0.2, 0.3]\n  data: x\n",
				expected: "record 1: 2D point needs 2 coordinates, got 3",
			},
			{
				name:     "BothSet",
				records:  "- point: [0.1, 0.2]\n  address: AAA\n  data: x\n",
				expected: "invalid records: records {path}: record 0: record has both point and address",
			},
			{
				name:     "NeitherSet",
				records:  "- data: x\n",
				expected: "invalid records: records {path}: record 0: record has neither point nor address",
			},
			{
				name:     "BadRegion",
				records:  "[]\n",
				args:     []string{"--region", "0,1,0"},
				expected: `invalid region "0,1,0": 2D region needs 4 bounds`,
			},
			{
				name:     "NaNData",
				records:  "- address: AAA\n  data: .nan\n",
				expected: "invalid records: records {path}: record 0: data: NaN: not a finite number",
			},
			{
				name:     "NestedInfiniteData",
				records:  "- point: [0.1, 0.2]\n  data: {a: [1, .inf]}\n",
				expected: `invalid records: records {path}: record 0: data: key "a": index 1: +Inf: not a finite number`,
			},
			{
				name:     "NonFiniteRegion",
				records:  "[]\n",
				args:     []string{"--region", "0,1,0,NaN"},
				expected: `invalid region "0,1,0,NaN": not a finite number`,
			},
			{
				name:     "BadRegionNumber",
				records:  "[]\n",
				args:     []string{"--region", "0,1,0,x"},
				expected: `invalid region "0,1,0,x": strconv.ParseFloat: parsing "x": invalid syntax`,
			},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				path := writeFile(t, "records.yaml", testCase.records)
				args := append([]string{"query", "--depth", "3", "--records", path}, testCase.args...)

				stdout, _, err := execute(t, args...)

				expected := testCase.expected
				if i := len("invalid records: records "); len(expected) > i && expected[:i] == "invalid records: records " {
					expected = expected[:i] + path + expected[i+len("{path}"):]
				}
				assert.EqualError(t, err, expected)
				assert.Equal(t, ExitInvalidInput, GetExitCode(err))
				assert.Empty(t, stdout)
			})
		}
	})

	t.Run("NonStringKeysJSON", func(t *testing.T) {
		path := writeFile(t, "records.yaml", "- address: AAA\n  data: {1: one, 2: [x, {true: y}]}\n")

		stdout, _, err := execute(t, "query", "--depth", "3", "--format", "json", "-r", path, "--prefix", "A")

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"status": "ok",
			"data": [{"query": "prefix", "arg": "A", "items": [{"1": "one", "2": ["x", {"true": "y"}]}]}]
		}`, stdout)
	})

	t.Run("InvalidAddressIsRecoverable", func(t *testing.T) {
		path := writeFile(t, "records.yaml", "- address: QQQ\n  data: x\n")

		_, _, err := execute(t, "query", "--depth", "3", "--records", path)

		assert.ErrorIs(t, err, address.ErrInvalidAddress)
	})
}
