/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ean

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/pattern"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/pkg/errors"
)

// ean13PayloadLen is the digit count of an EAN-13 value before its check
// digit is appended.
const ean13PayloadLen = 12

// EAN13 is a validated EAN-13 value: a 12-digit payload, its check digit,
// and the 95-unit pattern that encodes them. It is immutable once
// constructed; the pattern is assembled eagerly so every render is a pure
// read.
type EAN13 struct {
	value   string
	check   int
	encoded string
	opts    symbol.Options
	runs    pattern.Pattern
}

// NewEAN13 constructs an EAN13 from a digit string or integer value.
//
// Without Options.ChecksumIncluded the value must be exactly 12 digits and
// the check digit is generated; with it, 13 digits whose final digit must
// validate. Fails with symbol.ErrUnencodableCharacters on any shape mismatch
// and symbol.ErrChecksum on an embedded check digit that doesn't match.
func NewEAN13(value interface{}, o symbol.Options) (*EAN13, error) {
	o = o.Normalized()
	digits, err := symbol.DigitsOf(value)
	if err != nil {
		return nil, err
	}
	payload, check, err := splitChecksum("EAN-13", digits, ean13PayloadLen, o)
	if err != nil {
		return nil, err
	}
	encoded := payload + string(byte('0'+check))
	return &EAN13{
		value:   payload,
		check:   check,
		encoded: encoded,
		opts:    o,
		runs:    assemble13(encoded),
	}, nil
}

// Value returns the payload digits, check digit excluded.
func (e *EAN13) Value() string { return e.value }

// CheckDigit returns the check digit; for EAN-13 it always exists.
func (e *EAN13) CheckDigit() int { return e.check }

// EncodedString returns the 13 digits actually encoded in the bars: the
// payload followed by the check digit.
func (e *EAN13) EncodedString() string { return e.encoded }

// Options returns the options the value was constructed with.
func (e *EAN13) Options() symbol.Options { return e.opts }

// Pattern returns a copy of the canonical run-length sequence.
func (e *EAN13) Pattern() pattern.Pattern { return e.runs.Clone() }

// NumberSystem returns the first two digits of the value.
func (e *EAN13) NumberSystem() string { return e.value[:2] }

// ManufacturerCode returns digits three through seven of the value.
func (e *EAN13) ManufacturerCode() string { return e.value[2:7] }

// ProductCode returns the final five digits of the value.
func (e *EAN13) ProductCode() string { return e.value[7:] }

// Bars renders the pattern as an expanded bar string, one character per unit.
func (e *EAN13) Bars() string {
	return pattern.Bars(e.runs, e.opts.LineChar, e.opts.SpaceChar)
}

// RLE renders the pattern as concatenated run-length digits.
func (e *EAN13) RLE() string { return pattern.RLE(e.runs) }

// WN always fails for EAN-13: its runs span four widths, so no wide/narrow
// reduction exists.
func (e *EAN13) WN() (string, error) {
	return "", errors.Wrap(symbol.ErrNotImplemented,
		"EAN-13 runs take four distinct widths")
}

// EAN13CheckDigit returns the check digit for a 12-digit payload.
func EAN13CheckDigit(digits string) (int, error) {
	if !symbol.IsDigits(digits) || len(digits) != ean13PayloadLen {
		return 0, errors.Wrapf(symbol.ErrUnencodableCharacters,
			"EAN-13 payloads must be exactly %d digits, but this is %q",
			ean13PayloadLen, digits)
	}
	return checkRule.Generate(digits), nil
}

// ValidateEAN13CheckDigit reports whether a 13-digit string's final digit is
// the correct check digit for its first twelve.
func ValidateEAN13CheckDigit(digitsWithCheck string) bool {
	return symbol.IsDigits(digitsWithCheck) &&
		len(digitsWithCheck) == ean13PayloadLen+1 &&
		checkRule.Validate(digitsWithCheck)
}

// CanEncodeEAN13 reports whether the value would construct successfully with
// the given options.
func CanEncodeEAN13(value interface{}, o symbol.Options) bool {
	o = o.Normalized()
	digits, err := symbol.DigitsOf(value)
	if err != nil {
		return false
	}
	want := ean13PayloadLen
	if o.ChecksumIncluded {
		want++
	}
	return symbol.IsDigits(digits) && len(digits) == want
}

// DecodeEAN13 parses a bar, RLE, or wide/narrow rendering of an EAN-13 back
// into a validated EAN13.
//
// Input that cannot frame as EAN-13 fails with
// symbol.ErrUnencodableCharacters; correctly framed input with a digit group
// matching no table entry fails with symbol.ErrUndecodableCharacters. The
// recovered digits re-validate their check digit during construction, so a
// well-formed pattern of a corrupted code can also fail with
// symbol.ErrChecksum.
func DecodeEAN13(s string, o symbol.Options) (*EAN13, error) {
	o = o.Normalized()
	runs, err := pattern.Parse(s, o)
	if err != nil {
		return nil, err
	}
	digits, err := parse13(runs)
	if err != nil {
		return nil, err
	}
	o.ChecksumIncluded = true
	return NewEAN13(digits, o)
}
