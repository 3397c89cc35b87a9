package ean

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/pattern"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/pkg/errors"
)

// ean8PayloadLen is the digit count of an EAN-8 value before its check digit.
const ean8PayloadLen = 7

// EAN8 is a validated EAN-8 value, the short form of the family for small
// packages: seven payload digits plus a check digit in a 67-unit pattern.
// There is no parity trick; all four left-hand digits use the odd table.
type EAN8 struct {
	value   string
	check   int
	encoded string
	opts    symbol.Options
	runs    pattern.Pattern
}

// NewEAN8 constructs an EAN8 from a digit string or integer value: seven
// digits, or eight with Options.ChecksumIncluded.
func NewEAN8(value interface{}, o symbol.Options) (*EAN8, error) {
	o = o.Normalized()
	digits, err := symbol.DigitsOf(value)
	if err != nil {
		return nil, err
	}
	payload, check, err := splitChecksum("EAN-8", digits, ean8PayloadLen, o)
	if err != nil {
		return nil, err
	}
	encoded := payload + string(byte('0'+check))
	return &EAN8{
		value:   payload,
		check:   check,
		encoded: encoded,
		opts:    o,
		runs:    assemble8(encoded),
	}, nil
}

// Value returns the payload digits, check digit excluded.
func (e *EAN8) Value() string { return e.value }

// CheckDigit returns the check digit; for EAN-8 it always exists.
func (e *EAN8) CheckDigit() int { return e.check }

// EncodedString returns the 8 digits the bars represent.
func (e *EAN8) EncodedString() string { return e.encoded }

// Options returns the options the value was constructed with.
func (e *EAN8) Options() symbol.Options { return e.opts }

// Pattern returns a copy of the canonical run-length sequence.
func (e *EAN8) Pattern() pattern.Pattern { return e.runs.Clone() }

// NumberSystem returns the first two digits of the value.
func (e *EAN8) NumberSystem() string { return e.value[:2] }

// ProductCode returns the final five digits of the value.
func (e *EAN8) ProductCode() string { return e.value[2:] }

// Bars renders the pattern as an expanded bar string, one character per unit.
func (e *EAN8) Bars() string {
	return pattern.Bars(e.runs, e.opts.LineChar, e.opts.SpaceChar)
}

// RLE renders the pattern as concatenated run-length digits.
func (e *EAN8) RLE() string { return pattern.RLE(e.runs) }

// WN always fails for EAN-8: its runs span four widths, so no wide/narrow
// reduction exists.
func (e *EAN8) WN() (string, error) {
	return "", errors.Wrap(symbol.ErrNotImplemented,
		"EAN-8 runs take four distinct widths")
}

// EAN8CheckDigit returns the check digit for a 7-digit payload.
func EAN8CheckDigit(digits string) (int, error) {
	if !symbol.IsDigits(digits) || len(digits) != ean8PayloadLen {
		return 0, errors.Wrapf(symbol.ErrUnencodableCharacters,
			"EAN-8 payloads must be exactly %d digits, but this is %q",
			ean8PayloadLen, digits)
	}
	return checkRule.Generate(digits), nil
}

// ValidateEAN8CheckDigit reports whether an 8-digit string's final digit is
// the correct check digit for its first seven.
func ValidateEAN8CheckDigit(digitsWithCheck string) bool {
	return symbol.IsDigits(digitsWithCheck) &&
		len(digitsWithCheck) == ean8PayloadLen+1 &&
		checkRule.Validate(digitsWithCheck)
}

// CanEncodeEAN8 reports whether the value would construct successfully with
// the given options.
func CanEncodeEAN8(value interface{}, o symbol.Options) bool {
	o = o.Normalized()
	digits, err := symbol.DigitsOf(value)
	if err != nil {
		return false
	}
	want := ean8PayloadLen
	if o.ChecksumIncluded {
		want++
	}
	return symbol.IsDigits(digits) && len(digits) == want
}

// DecodeEAN8 parses a bar, RLE, or wide/narrow rendering of an EAN-8 back
// into a validated EAN8.
func DecodeEAN8(s string, o symbol.Options) (*EAN8, error) {
	o = o.Normalized()
	runs, err := pattern.Parse(s, o)
	if err != nil {
		return nil, err
	}
	digits, err := parse8(runs)
	if err != nil {
		return nil, err
	}
	o.ChecksumIncluded = true
	return NewEAN8(digits, o)
}
