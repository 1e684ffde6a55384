// Copyright 2026 The cellcode (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package address

import (
	"errors"
	"fmt"
)

const packageName = "address: "

// ErrInvalidAddress is matched, via errors.Is, by every error returned
// for an address containing a symbol outside the alphabet or having
// the wrong length.
var ErrInvalidAddress = textErr("invalid address")

// InvalidAddressError describes why an address was rejected. Exactly
// one of the two failure modes is populated: either Symbol and Pos
// locate an illegal symbol, or Want and Got give the expected and
// actual lengths.
type InvalidAddressError struct {
	// Address is the rejected address.
	Address string
	// Symbol is the offending symbol, or zero if the address was
	// rejected for its length. A byte that does not start a valid UTF-8
	// sequence is reported as utf8.RuneError.
	Symbol rune
	// Pos is the byte offset of Symbol within Address.
	Pos int
	// Want is the required address length, or zero if the address was
	// rejected for an illegal symbol.
	Want int
	// Got is the actual address length.
	Got int
}

func (e *InvalidAddressError) Error() string {
	if e.Want > 0 {
		return fmt.Sprintf(packageName+"invalid address %q: length must be %d, got %d", e.Address, e.Want, e.Got)
	}
	return fmt.Sprintf(packageName+"invalid address %q: illegal symbol %q at position %d", e.Address, e.Symbol, e.Pos)
}

// Is reports whether target is ErrInvalidAddress.
func (e *InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
