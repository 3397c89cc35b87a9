/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package twooffive

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/pattern"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/pkg/errors"
)

// Guard sequences for Interleaved 2 of 5: four narrow elements open the
// code, a wide bar and two narrow elements close it. The asymmetry is what
// lets the decoder tell a mirror read from a corrupt code.
var (
	itfStart = pattern.MustWN("nnnn")
	itfStop  = pattern.MustWN("wnn")

	itfStartWN = "nnnn"
	itfStopWN  = "wnn"
)

// Interleaved is a validated Interleaved 2 of 5 value of any digit length.
//
// Digits are encoded in pairs: the first digit of each pair supplies the
// five bar widths and the second the five space widths between them. A value
// whose encoded digit count is odd is padded with a leading zero in the
// pattern only; the value itself is stored as given.
type Interleaved struct {
	value    string
	check    int
	hasCheck bool
	encoded  string
	opts     symbol.Options
	runs     pattern.Pattern
}

// NewInterleaved constructs an Interleaved 2 of 5 from a digit string or
// integer value of one or more digits.
//
// The check digit is generated and appended unless Options.SkipChecksum is
// set (the family's check digit is optional) or Options.ChecksumIncluded
// declares the final digit is already the check digit, in which case it must
// validate.
func NewInterleaved(value interface{}, o symbol.Options) (*Interleaved, error) {
	o = o.Normalized()
	digits, err := symbol.DigitsOf(value)
	if err != nil {
		return nil, err
	}
	val, check, hasCheck, encoded, err := resolveValue("interleaved 2 of 5", digits, o)
	if err != nil {
		return nil, err
	}
	return &Interleaved{
		value:    val,
		check:    check,
		hasCheck: hasCheck,
		encoded:  encoded,
		opts:     o,
		runs:     assembleInterleaved(encoded),
	}, nil
}

func assembleInterleaved(encoded string) pattern.Pattern {
	if len(encoded)%2 == 1 {
		encoded = "0" + encoded
	}
	b := &pattern.Builder{}
	b.Add(true, itfStart...)
	pair := make([]int, 10)
	for i := 0; i < len(encoded); i += 2 {
		bars := digitRuns[encoded[i]-'0']
		spaces := digitRuns[encoded[i+1]-'0']
		for j := 0; j < 5; j++ {
			pair[2*j], pair[2*j+1] = bars[j], spaces[j]
		}
		b.Add(true, pair...)
	}
	b.Add(true, itfStop...)
	return b.Pattern()
}

// Value returns the payload digits, check digit excluded.
func (in *Interleaved) Value() string { return in.value }

// CheckDigit returns the check digit and whether one exists; a value built
// with Options.SkipChecksum has none.
func (in *Interleaved) CheckDigit() (int, bool) { return in.check, in.hasCheck }

// EncodedString returns the digits the bars represent: the payload plus the
// check digit when one exists.
func (in *Interleaved) EncodedString() string { return in.encoded }

// Options returns the options the value was constructed with.
func (in *Interleaved) Options() symbol.Options { return in.opts }

// Pattern returns a copy of the canonical run-length sequence.
func (in *Interleaved) Pattern() pattern.Pattern { return in.runs.Clone() }

// Bars renders the pattern as an expanded bar string; wide runs span two
// units.
func (in *Interleaved) Bars() string {
	return pattern.Bars(in.runs, in.opts.LineChar, in.opts.SpaceChar)
}

// RLE renders the pattern as concatenated run-length digits (1s and 2s).
func (in *Interleaved) RLE() string { return pattern.RLE(in.runs) }

// WN renders the pattern in the wide/narrow alphabet; the family is
// two-width, so this always succeeds.
func (in *Interleaved) WN() (string, error) {
	return pattern.WN(in.runs, in.opts.WideChar, in.opts.NarrowChar)
}

// DecodeInterleaved parses a bar, RLE, or wide/narrow rendering of an
// Interleaved 2 of 5 back into a validated value.
//
// The reconstructed digits include the leading zero pad, if the encoded
// count was odd, and the check digit. By default the final digit is treated
// as the check digit and validated; pass Options.SkipChecksum when the code
// was printed without one. A pattern that fails in its given orientation is
// retried reversed before the decoder gives up (mirror-read tolerance).
func DecodeInterleaved(s string, o symbol.Options) (*Interleaved, error) {
	o = o.Normalized()
	runs, err := pattern.Parse(s, o)
	if err != nil {
		return nil, err
	}
	digits, err := decodeMirrored(runs, parseInterleaved)
	if err != nil {
		return nil, err
	}
	o.ChecksumIncluded = !o.SkipChecksum
	return NewInterleaved(digits, o)
}

// parseInterleaved recovers the digit string from one orientation of a run
// sequence: strip the guards, then split every ten runs into the five bar
// widths and five space widths of one digit pair.
func parseInterleaved(runs pattern.Pattern) (string, error) {
	if len(runs) < 17 || (len(runs)-len(itfStart)-len(itfStop))%10 != 0 {
		return "", errors.Wrapf(symbol.ErrUnencodableCharacters,
			"%d runs cannot frame as interleaved 2 of 5", len(runs))
	}
	wn, err := runsToWN(runs)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(wn, itfStartWN) || !strings.HasSuffix(wn, itfStopWN) {
		return "", errors.Wrap(symbol.ErrUnencodableCharacters,
			"pattern does not have interleaved 2 of 5 guards")
	}

	body := wn[len(itfStartWN) : len(wn)-len(itfStopWN)]
	digits := make([]byte, 0, len(body)/5)
	var bars, spaces [5]byte
	for at := 0; at < len(body); at += 10 {
		window := body[at : at+10]
		for j := 0; j < 5; j++ {
			bars[j], spaces[j] = window[2*j], window[2*j+1]
		}
		first, ok := lookupWN(string(bars[:]))
		if !ok {
			return "", errors.Wrapf(symbol.ErrUndecodableCharacters,
				"bar pattern %q matches no digit", bars[:])
		}
		second, ok := lookupWN(string(spaces[:]))
		if !ok {
			return "", errors.Wrapf(symbol.ErrUndecodableCharacters,
				"space pattern %q matches no digit", spaces[:])
		}
		digits = append(digits, first, second)
	}
	return string(digits), nil
}
