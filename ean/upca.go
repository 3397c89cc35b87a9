package ean

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/pattern"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/pkg/errors"
)

// upcaPayloadLen is the digit count of a UPC-A value before its check digit.
const upcaPayloadLen = 11

// UPCA is a validated UPC-A value. UPC-A is EAN-13 with a constant leading
// zero: the check digit and the 95-unit pattern come from the EAN-13
// algorithm applied to the zero-prefixed payload, while the value and its
// derived fields stay in the shorter 11-digit form.
type UPCA struct {
	value   string
	check   int
	encoded string
	opts    symbol.Options
	runs    pattern.Pattern
}

// NewUPCA constructs a UPCA from a digit string or integer value.
//
// The value is normally 11 digits (12 with Options.ChecksumIncluded), but a
// value already carrying the family's constant leading zero is accepted
// transparently and the zero is stripped.
func NewUPCA(value interface{}, o symbol.Options) (*UPCA, error) {
	o = o.Normalized()
	digits, err := symbol.DigitsOf(value)
	if err != nil {
		return nil, err
	}
	digits = stripUPCAPrefix(digits, o)
	payload, check, err := splitChecksum("UPC-A", digits, upcaPayloadLen, o)
	if err != nil {
		return nil, err
	}
	encoded := payload + string(byte('0'+check))
	return &UPCA{
		value:   payload,
		check:   check,
		encoded: encoded,
		opts:    o,
		runs:    assemble13("0" + encoded),
	}, nil
}

// stripUPCAPrefix drops the EAN-13 leading zero from a value that already
// carries it, so callers may supply either form.
func stripUPCAPrefix(digits string, o symbol.Options) string {
	want := upcaPayloadLen
	if o.ChecksumIncluded {
		want++
	}
	if len(digits) == want+1 && strings.HasPrefix(digits, "0") {
		return digits[1:]
	}
	return digits
}

// Value returns the 11 payload digits, check digit excluded.
func (u *UPCA) Value() string { return u.value }

// CheckDigit returns the check digit; for UPC-A it always exists.
func (u *UPCA) CheckDigit() int { return u.check }

// EncodedString returns the 12 digits the bars represent: the payload
// followed by the check digit. The constant leading zero is an encoding
// detail of the underlying EAN-13 pattern and is not part of the string.
func (u *UPCA) EncodedString() string { return u.encoded }

// Options returns the options the value was constructed with.
func (u *UPCA) Options() symbol.Options { return u.opts }

// Pattern returns a copy of the canonical run-length sequence.
func (u *UPCA) Pattern() pattern.Pattern { return u.runs.Clone() }

// NumberSystem returns the first digit of the value.
func (u *UPCA) NumberSystem() string { return u.value[:1] }

// ManufacturerCode returns digits two through six of the value.
func (u *UPCA) ManufacturerCode() string { return u.value[1:6] }

// ProductCode returns the final five digits of the value.
func (u *UPCA) ProductCode() string { return u.value[6:] }

// Bars renders the pattern as an expanded bar string, one character per unit.
func (u *UPCA) Bars() string {
	return pattern.Bars(u.runs, u.opts.LineChar, u.opts.SpaceChar)
}

// RLE renders the pattern as concatenated run-length digits.
func (u *UPCA) RLE() string { return pattern.RLE(u.runs) }

// WN always fails for UPC-A: its runs span four widths, so no wide/narrow
// reduction exists.
func (u *UPCA) WN() (string, error) {
	return "", errors.Wrap(symbol.ErrNotImplemented,
		"UPC-A runs take four distinct widths")
}

// UPCACheckDigit returns the check digit for an 11-digit payload; a 12-digit
// payload with the leading zero already attached is accepted transparently.
func UPCACheckDigit(digits string) (int, error) {
	if len(digits) == upcaPayloadLen+1 && strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}
	if !symbol.IsDigits(digits) || len(digits) != upcaPayloadLen {
		return 0, errors.Wrapf(symbol.ErrUnencodableCharacters,
			"UPC-A payloads must be exactly %d digits, but this is %q",
			upcaPayloadLen, digits)
	}
	return checkRule.Generate(digits), nil
}

// ValidateUPCACheckDigit reports whether a 12-digit string's final digit is
// the correct check digit for its first eleven.
func ValidateUPCACheckDigit(digitsWithCheck string) bool {
	return symbol.IsDigits(digitsWithCheck) &&
		len(digitsWithCheck) == upcaPayloadLen+1 &&
		checkRule.Validate(digitsWithCheck)
}

// CanEncodeUPCA reports whether the value would construct successfully with
// the given options, with or without the family's constant leading zero.
func CanEncodeUPCA(value interface{}, o symbol.Options) bool {
	o = o.Normalized()
	digits, err := symbol.DigitsOf(value)
	if err != nil {
		return false
	}
	digits = stripUPCAPrefix(digits, o)
	want := upcaPayloadLen
	if o.ChecksumIncluded {
		want++
	}
	return symbol.IsDigits(digits) && len(digits) == want
}

// DecodeUPCA parses a bar, RLE, or wide/narrow rendering of a UPC-A back
// into a validated UPCA. The pattern must decode as an EAN-13 whose leading
// digit is the family's constant zero.
func DecodeUPCA(s string, o symbol.Options) (*UPCA, error) {
	o = o.Normalized()
	runs, err := pattern.Parse(s, o)
	if err != nil {
		return nil, err
	}
	digits, err := parse13(runs)
	if err != nil {
		return nil, err
	}
	if digits[0] != '0' {
		return nil, errors.Wrapf(symbol.ErrUnencodableCharacters,
			"pattern encodes EAN-13 number system %c, not a UPC-A", digits[0])
	}
	o.ChecksumIncluded = true
	return NewUPCA(digits[1:], o)
}
