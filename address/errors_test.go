// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package address

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("textErr", func(t *testing.T) {
		assert.EqualError(t, textErr("foo"), "address: foo")
	})

	t.Run("fmtPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "address: my bar is baz-ed to 10", func() {
			fmtPanic("my %s is %s-ed to %d", "bar", "baz", 10)
		})
	})
}

func TestInvalidAddressError(t *testing.T) {
	testCases := []struct {
		name     string
		err      *InvalidAddressError
		expected string
	}{
		{
			name:     "Symbol",
			err:      &InvalidAddressError{Address: "ABX", Symbol: 'X', Pos: 2, Got: 3},
			expected: `address: invalid address "ABX": illegal symbol 'X' at position 2`,
		},
		{
			name:     "MultiByteSymbol",
			err:      &InvalidAddressError{Address: "AÄ", Symbol: 'Ä', Pos: 1, Got: 3},
			expected: `address: invalid address "AÄ": illegal symbol 'Ä' at position 1`,
		},
		{
			name:     "Length",
			err:      &InvalidAddressError{Address: "AB", Want: 3, Got: 2},
			expected: `address: invalid address "AB": length must be 3, got 2`,
		},
		{
			name:     "Empty",
			err:      &InvalidAddressError{Address: "", Want: 5, Got: 0},
			expected: `address: invalid address "": length must be 5, got 0`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.EqualError(t, testCase.err, testCase.expected)
			assert.ErrorIs(t, testCase.err, ErrInvalidAddress)
		})
	}

	t.Run("Wrapped", func(t *testing.T) {
		err := fmt.Errorf("loading record 7: %w", &InvalidAddressError{Address: "Q", Symbol: 'Q', Got: 1})

		var iae *InvalidAddressError
		assert.ErrorIs(t, err, ErrInvalidAddress)
		assert.True(t, errors.As(err, &iae))
		assert.Equal(t, 'Q', iae.Symbol)
	})

	t.Run("NotOther", func(t *testing.T) {
		err := &InvalidAddressError{Address: "Q", Symbol: 'Q', Got: 1}

		assert.False(t, errors.Is(err, errors.New("address: invalid address")))
	})
}
