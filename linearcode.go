// Package linearcode decodes linear barcode renderings without knowing ahead
// of time which symbology produced them.
//
// The symbology packages (ean, twooffive) each expose their own constructors
// and decoders; this package is the entry point for callers that only have a
// scanned pattern. Decode tries each known symbology in turn and returns the
// first that accepts the pattern.
package linearcode

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/ean"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/pattern"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/twooffive"
	"github.com/pkg/errors"
)

// Symbol is the surface every symbology value object shares: the validated
// digits, the encoded form, and the three pattern renderings. Check digit
// accessors stay on the concrete types since their shape differs between
// families (the 2-of-5 check digit is optional).
type Symbol interface {
	Value() string
	EncodedString() string
	Options() symbol.Options
	Pattern() pattern.Pattern
	Bars() string
	RLE() string
	WN() (string, error)
}

// Decode parses a bar, RLE, or wide/narrow rendering of any supported
// symbology: UPC-A, EAN-13, EAN-8, Interleaved 2 of 5, or Matrix 2 of 5.
//
// UPC-A is tried before EAN-13, so a pattern whose EAN-13 number system is
// the UPC-A constant zero comes back as a *ean.UPCA; scanners conventionally
// report such codes in their 12-digit form. The symbologies' framing rules
// are mutually exclusive otherwise, so trial order does not affect which
// patterns decode.
//
// When no symbology accepts the pattern, Decode reports the most specific
// failure seen: a symbology that matched the framing but found a bad check
// digit (symbol.ErrChecksum) or an unmatchable digit group
// (symbol.ErrUndecodableCharacters) outranks the generic
// symbol.ErrUnencodableCharacters.
func Decode(s string, o symbol.Options) (Symbol, error) {
	var checksumErr, undecodableErr error
	for _, try := range []func() (Symbol, error){
		func() (Symbol, error) { return ean.DecodeUPCA(s, o) },
		func() (Symbol, error) { return ean.DecodeEAN13(s, o) },
		func() (Symbol, error) { return ean.DecodeEAN8(s, o) },
		func() (Symbol, error) { return twooffive.DecodeInterleaved(s, o) },
		func() (Symbol, error) { return twooffive.DecodeMatrix(s, o) },
	} {
		sym, err := try()
		if err == nil {
			return sym, nil
		}
		switch {
		case errors.Is(err, symbol.ErrChecksum) && checksumErr == nil:
			checksumErr = err
		case errors.Is(err, symbol.ErrUndecodableCharacters) && undecodableErr == nil:
			undecodableErr = err
		}
	}
	if checksumErr != nil {
		return nil, checksumErr
	}
	if undecodableErr != nil {
		return nil, undecodableErr
	}
	return nil, errors.Wrapf(symbol.ErrUnencodableCharacters,
		"%q matches no supported symbology", s)
}
