// Package ean implements the EAN/UPC family of fixed-width linear
// symbologies: EAN-13, its 12-digit UPC-A specialization, and the short-form
// EAN-8.
//
// Every member encodes each digit as two bars and two spaces spanning seven
// units, framed by three guard patterns. EAN-13 squeezes a thirteenth digit
// out of twelve encoded positions by choosing, per position, between an
// odd-parity and an even-parity table for the six left-hand digits; the
// sequence of parities spells out the leading digit. UPC-A is EAN-13 with a
// constant leading zero, so it delegates its checksum and pattern assembly to
// the EAN-13 algorithm and only re-derives its own, shorter fields.
package ean

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/checksum"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/pattern"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/pkg/errors"
)

// checkRule is the GS1 weighting: alternating 3 and 1, anchored so the
// rightmost payload digit gets weight 3.
var checkRule = checksum.Rule{Weights: []int{3, 1}, FromRight: true}

var (
	sideGuard   = pattern.MustRLE("111")   // bar space bar
	centerGuard = pattern.MustRLE("11111") // space bar space bar space

	// leftOdd holds the odd-parity (L) digit patterns, space first. The
	// right-hand (R) patterns are the same run lengths read bar-first, and
	// the even-parity (G) patterns are the R patterns mirrored, so both
	// derive from this one table.
	leftOdd = [10]pattern.Pattern{
		pattern.MustRLE("3211"),
		pattern.MustRLE("2221"),
		pattern.MustRLE("2122"),
		pattern.MustRLE("1411"),
		pattern.MustRLE("1132"),
		pattern.MustRLE("1231"),
		pattern.MustRLE("1114"),
		pattern.MustRLE("1312"),
		pattern.MustRLE("1213"),
		pattern.MustRLE("3112"),
	}
	leftEven, rightHand = deriveTables()

	// parityTable maps an EAN-13 leading digit to the odd/even parity
	// choices of the six left-hand positions.
	parityTable = [10]string{
		"oooooo", "ooeoee", "ooeeoe", "ooeeeo", "oeooee",
		"oeeooe", "oeeeoo", "oeoeoe", "oeoeeo", "oeeoeo",
	}
)

func deriveTables() (even, right [10]pattern.Pattern) {
	for d, p := range leftOdd {
		right[d] = p.Clone()
		even[d] = p.Reverse()
	}
	return
}

// splitChecksum runs the shared construction steps for a fixed-length member
// of the family: charset and exact-length validation, then check digit
// resolution per the options. SkipChecksum is ignored; the EAN/UPC check
// digit is structural, not optional.
func splitChecksum(name, digits string, payloadLen int, o symbol.Options) (payload string, check int, err error) {
	want := payloadLen
	if o.ChecksumIncluded {
		want++
	}
	if !symbol.IsDigits(digits) || len(digits) != want {
		return "", 0, errors.Wrapf(symbol.ErrUnencodableCharacters,
			"%s values must be exactly %d digits, but this is %q", name, want, digits)
	}
	if o.ChecksumIncluded {
		payload, check = digits[:payloadLen], int(digits[payloadLen]-'0')
		if got := checkRule.Generate(payload); got != check {
			return "", 0, errors.Wrapf(symbol.ErrChecksum,
				"%s %q embeds check digit %d, but the payload requires %d",
				name, digits, check, got)
		}
		return payload, check, nil
	}
	return digits, checkRule.Generate(digits), nil
}

// assemble13 turns a 13-digit encoded string (check digit included) into its
// 59-run, 95-unit pattern.
func assemble13(encoded string) pattern.Pattern {
	b := &pattern.Builder{}
	b.Add(true, sideGuard...)
	parity := parityTable[encoded[0]-'0']
	for i := 0; i < 6; i++ {
		d := encoded[1+i] - '0'
		if parity[i] == 'o' {
			b.Add(false, leftOdd[d]...)
		} else {
			b.Add(false, leftEven[d]...)
		}
	}
	b.Add(false, centerGuard...)
	for i := 7; i < 13; i++ {
		b.Add(true, rightHand[encoded[i]-'0']...)
	}
	b.Add(true, sideGuard...)
	return b.Pattern()
}

// assemble8 turns an 8-digit encoded string into its 43-run, 67-unit pattern.
// EAN-8 has no parity trick: all four left digits use the odd table.
func assemble8(encoded string) pattern.Pattern {
	b := &pattern.Builder{}
	b.Add(true, sideGuard...)
	for i := 0; i < 4; i++ {
		b.Add(false, leftOdd[encoded[i]-'0']...)
	}
	b.Add(false, centerGuard...)
	for i := 4; i < 8; i++ {
		b.Add(true, rightHand[encoded[i]-'0']...)
	}
	b.Add(true, sideGuard...)
	return b.Pattern()
}

// matchAt reports whether the guard runs appear at offset i.
func matchAt(runs pattern.Pattern, i int, guard pattern.Pattern) bool {
	if i+len(guard) > len(runs) {
		return false
	}
	for j, g := range guard {
		if runs[i+j] != g {
			return false
		}
	}
	return true
}

// matchDigit reverse-looks-up a 4-run group in a digit table.
func matchDigit(table *[10]pattern.Pattern, group pattern.Pattern) (int, bool) {
	for d, p := range table {
		if p[0] == group[0] && p[1] == group[1] && p[2] == group[2] && p[3] == group[3] {
			return d, true
		}
	}
	return 0, false
}

// parse13 recovers the 13-digit encoded string from a 59-run pattern.
func parse13(runs pattern.Pattern) (string, error) {
	if len(runs) != 59 ||
		!matchAt(runs, 0, sideGuard) ||
		!matchAt(runs, 27, centerGuard) ||
		!matchAt(runs, 56, sideGuard) {
		return "", errors.Wrap(symbol.ErrUnencodableCharacters,
			"pattern does not have EAN-13 framing")
	}

	digits := make([]byte, 13)
	var parity [6]byte
	for i := 0; i < 6; i++ {
		group := runs[3+4*i : 7+4*i]
		if d, ok := matchDigit(&leftOdd, group); ok {
			digits[1+i], parity[i] = byte('0'+d), 'o'
		} else if d, ok := matchDigit(&leftEven, group); ok {
			digits[1+i], parity[i] = byte('0'+d), 'e'
		} else {
			return "", errors.Wrapf(symbol.ErrUndecodableCharacters,
				"left-hand group %d matches no digit pattern", i+1)
		}
	}

	first, ok := parityDigit(parity)
	if !ok {
		return "", errors.Wrapf(symbol.ErrUndecodableCharacters,
			"parity sequence %q encodes no leading digit", parity[:])
	}
	digits[0] = byte('0' + first)

	for i := 0; i < 6; i++ {
		group := runs[32+4*i : 36+4*i]
		d, ok := matchDigit(&rightHand, group)
		if !ok {
			return "", errors.Wrapf(symbol.ErrUndecodableCharacters,
				"right-hand group %d matches no digit pattern", i+1)
		}
		digits[7+i] = byte('0' + d)
	}
	return string(digits), nil
}

// parse8 recovers the 8-digit encoded string from a 43-run pattern.
func parse8(runs pattern.Pattern) (string, error) {
	if len(runs) != 43 ||
		!matchAt(runs, 0, sideGuard) ||
		!matchAt(runs, 19, centerGuard) ||
		!matchAt(runs, 40, sideGuard) {
		return "", errors.Wrap(symbol.ErrUnencodableCharacters,
			"pattern does not have EAN-8 framing")
	}

	digits := make([]byte, 8)
	for i := 0; i < 4; i++ {
		group := runs[3+4*i : 7+4*i]
		d, ok := matchDigit(&leftOdd, group)
		if !ok {
			return "", errors.Wrapf(symbol.ErrUndecodableCharacters,
				"left-hand group %d matches no digit pattern", i+1)
		}
		digits[i] = byte('0' + d)
	}
	for i := 0; i < 4; i++ {
		group := runs[24+4*i : 28+4*i]
		d, ok := matchDigit(&rightHand, group)
		if !ok {
			return "", errors.Wrapf(symbol.ErrUndecodableCharacters,
				"right-hand group %d matches no digit pattern", i+1)
		}
		digits[4+i] = byte('0' + d)
	}
	return string(digits), nil
}

func parityDigit(parity [6]byte) (int, bool) {
	for d, seq := range parityTable {
		if string(parity[:]) == seq {
			return d, true
		}
	}
	return 0, false
}
