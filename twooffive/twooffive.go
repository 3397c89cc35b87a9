// Package twooffive implements the 2-of-5 family of wide/narrow linear
// symbologies: Interleaved 2 of 5 and Matrix 2 of 5.
//
// Every digit in the family is five elements, exactly two of them wide. The
// family members differ in how those elements are laid onto the code:
// Interleaved 2 of 5 consumes digits in pairs, the first digit's elements
// becoming the five bars and the second's the five interleaved spaces, while
// Matrix 2 of 5 lays each digit down directly as bar-space-bar-space-bar with
// a narrow space between symbols. Both share the digit table and the check
// digit rule, and both tolerate mirror reads: a pattern that fails to decode
// in its given orientation is retried reversed before the decoder gives up,
// since nothing in the printed code marks its orientation.
package twooffive

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/checksum"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/pattern"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/pkg/errors"
)

// checkRule weights alternating 1 and 3 counted from the rightmost payload
// digit. The check digit is optional throughout the family, so constructors
// honor Options.SkipChecksum.
var checkRule = checksum.Rule{Weights: []int{1, 3}, FromRight: true}

// digitWN maps each digit to its five-element pattern, wide runs marked 'w'
// and narrow 'n'. Exactly two of five are wide, which is what makes every
// possible corruption of a single element detectable at lookup time.
var digitWN = [10]string{
	"nnwwn", // 0
	"wnnnw", // 1
	"nwnnw", // 2
	"wwnnn", // 3
	"nnwnw", // 4
	"wnwnn", // 5
	"nwwnn", // 6
	"nnnww", // 7
	"wnnwn", // 8
	"nwnwn", // 9
}

var digitRuns = deriveRuns()

func deriveRuns() (runs [10]pattern.Pattern) {
	for d, wn := range digitWN {
		runs[d] = pattern.MustWN(wn)
	}
	return
}

// CheckDigit returns the family check digit for a payload of any length.
func CheckDigit(digits string) (int, error) {
	if !symbol.IsDigits(digits) {
		return 0, errors.Wrapf(symbol.ErrUnencodableCharacters,
			"2-of-5 payloads must be digits, but this is %q", digits)
	}
	return checkRule.Generate(digits), nil
}

// ValidateCheckDigit reports whether the string's final digit is the correct
// family check digit for the digits before it.
func ValidateCheckDigit(digitsWithCheck string) bool {
	return symbol.IsDigits(digitsWithCheck) && checkRule.Validate(digitsWithCheck)
}

// CanEncode reports whether the value would construct successfully with the
// given options; the constraints are the same for every family member.
func CanEncode(value interface{}, o symbol.Options) bool {
	digits, err := symbol.DigitsOf(value)
	if err != nil || !symbol.IsDigits(digits) {
		return false
	}
	return !o.ChecksumIncluded || len(digits) >= 2
}

// resolveValue runs the shared construction steps: charset validation, then
// check digit resolution per the options. ChecksumIncluded wins over
// SkipChecksum when both are set.
func resolveValue(name, digits string, o symbol.Options) (value string, check int, hasCheck bool, encoded string, err error) {
	if !symbol.IsDigits(digits) {
		return "", 0, false, "", errors.Wrapf(symbol.ErrUnencodableCharacters,
			"%s values must be one or more digits, but this is %q", name, digits)
	}
	switch {
	case o.ChecksumIncluded:
		if len(digits) < 2 {
			return "", 0, false, "", errors.Wrapf(symbol.ErrUnencodableCharacters,
				"%s value %q is too short to include a check digit", name, digits)
		}
		value, check = digits[:len(digits)-1], int(digits[len(digits)-1]-'0')
		if got := checkRule.Generate(value); got != check {
			return "", 0, false, "", errors.Wrapf(symbol.ErrChecksum,
				"%s %q embeds check digit %d, but the payload requires %d",
				name, digits, check, got)
		}
		return value, check, true, digits, nil
	case o.SkipChecksum:
		return digits, 0, false, digits, nil
	}
	check = checkRule.Generate(digits)
	return digits, check, true, digits + string(byte('0'+check)), nil
}

// runsToWN classifies each run as wide or narrow. The family prints exactly
// two run widths, so any sequence with more cannot be a 2-of-5 code at all;
// the classification is by observed width, which keeps decoding independent
// of the unit scale the pattern was rendered at.
func runsToWN(runs pattern.Pattern) (string, error) {
	narrow, wide := 0, 0
	for _, run := range runs {
		switch {
		case narrow == 0 || run == narrow:
			narrow = run
		case wide == 0 || run == wide:
			wide = run
		default:
			return "", errors.Wrapf(symbol.ErrUnencodableCharacters,
				"2-of-5 patterns have two run widths, but this has at least three (%d, %d, %d)",
				narrow, wide, run)
		}
	}
	if wide != 0 && wide < narrow {
		narrow, wide = wide, narrow
	}
	b := &strings.Builder{}
	b.Grow(len(runs))
	for _, run := range runs {
		if run == narrow {
			b.WriteByte('n')
		} else {
			b.WriteByte('w')
		}
	}
	return b.String(), nil
}

// lookupWN reverse-looks-up a five-element wide/narrow group.
func lookupWN(group string) (byte, bool) {
	for d, wn := range digitWN {
		if wn == group {
			return byte('0' + d), true
		}
	}
	return 0, false
}

// decodeMirrored runs parse on the runs as given and, if that fails, once
// more on the reversed sequence, since the printed code carries no
// orientation mark. A failure past the framing stage in either orientation
// reports the more specific error.
func decodeMirrored(runs pattern.Pattern, parse func(pattern.Pattern) (string, error)) (string, error) {
	digits, fwdErr := parse(runs)
	if fwdErr == nil {
		return digits, nil
	}
	digits, revErr := parse(runs.Reverse())
	if revErr == nil {
		return digits, nil
	}
	if errors.Is(fwdErr, symbol.ErrUndecodableCharacters) {
		return "", fwdErr
	}
	if errors.Is(revErr, symbol.ErrUndecodableCharacters) {
		return "", revErr
	}
	return "", fwdErr
}
