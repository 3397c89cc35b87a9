package twooffive

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/pattern"
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/pkg/errors"
)

// Matrix 2 of 5 frames the code with a wide bar followed by four narrow
// elements at both ends, and separates symbols with a narrow space.
var (
	matrixGuard   = pattern.MustWN("wnnnn")
	matrixGuardWN = "wnnnn"
)

// Matrix is a validated Matrix 2 of 5 value of any digit length.
//
// Unlike its interleaved sibling, Matrix 2 of 5 encodes each digit directly:
// the five table elements become bar, space, bar, space, bar, and a narrow
// space separates consecutive symbols. Only three of the five elements are
// bars, which makes the code taller than interleaved for the same content
// but much simpler to read.
type Matrix struct {
	value    string
	check    int
	hasCheck bool
	encoded  string
	opts     symbol.Options
	runs     pattern.Pattern
}

// NewMatrix constructs a Matrix 2 of 5 from a digit string or integer value
// of one or more digits. Checksum options behave as for NewInterleaved.
func NewMatrix(value interface{}, o symbol.Options) (*Matrix, error) {
	o = o.Normalized()
	digits, err := symbol.DigitsOf(value)
	if err != nil {
		return nil, err
	}
	val, check, hasCheck, encoded, err := resolveValue("matrix 2 of 5", digits, o)
	if err != nil {
		return nil, err
	}
	return &Matrix{
		value:    val,
		check:    check,
		hasCheck: hasCheck,
		encoded:  encoded,
		opts:     o,
		runs:     assembleMatrix(encoded),
	}, nil
}

func assembleMatrix(encoded string) pattern.Pattern {
	b := &pattern.Builder{}
	b.Add(true, matrixGuard...)
	for i := 0; i < len(encoded); i++ {
		b.Add(false, 1) // narrow inter-symbol space
		b.Add(true, digitRuns[encoded[i]-'0']...)
	}
	b.Add(false, 1)
	b.Add(true, matrixGuard...)
	return b.Pattern()
}

// Value returns the payload digits, check digit excluded.
func (m *Matrix) Value() string { return m.value }

// CheckDigit returns the check digit and whether one exists.
func (m *Matrix) CheckDigit() (int, bool) { return m.check, m.hasCheck }

// EncodedString returns the digits the bars represent: the payload plus the
// check digit when one exists.
func (m *Matrix) EncodedString() string { return m.encoded }

// Options returns the options the value was constructed with.
func (m *Matrix) Options() symbol.Options { return m.opts }

// Pattern returns a copy of the canonical run-length sequence.
func (m *Matrix) Pattern() pattern.Pattern { return m.runs.Clone() }

// Bars renders the pattern as an expanded bar string; wide runs span two
// units.
func (m *Matrix) Bars() string {
	return pattern.Bars(m.runs, m.opts.LineChar, m.opts.SpaceChar)
}

// RLE renders the pattern as concatenated run-length digits (1s and 2s).
func (m *Matrix) RLE() string { return pattern.RLE(m.runs) }

// WN renders the pattern in the wide/narrow alphabet; the family is
// two-width, so this always succeeds.
func (m *Matrix) WN() (string, error) {
	return pattern.WN(m.runs, m.opts.WideChar, m.opts.NarrowChar)
}

// DecodeMatrix parses a bar, RLE, or wide/narrow rendering of a Matrix 2 of
// 5 back into a validated value. Checksum handling and mirror-read tolerance
// behave as for DecodeInterleaved.
func DecodeMatrix(s string, o symbol.Options) (*Matrix, error) {
	o = o.Normalized()
	runs, err := pattern.Parse(s, o)
	if err != nil {
		return nil, err
	}
	digits, err := decodeMirrored(runs, parseMatrix)
	if err != nil {
		return nil, err
	}
	o.ChecksumIncluded = !o.SkipChecksum
	return NewMatrix(digits, o)
}

// parseMatrix recovers the digit string from one orientation of a run
// sequence: strip the guards, then consume a narrow separator and a
// five-element group per digit.
func parseMatrix(runs pattern.Pattern) (string, error) {
	// guards plus per-digit separator-and-group plus the final separator
	if len(runs) < 17 || (len(runs)-2*len(matrixGuard)-1)%6 != 0 {
		return "", errors.Wrapf(symbol.ErrUnencodableCharacters,
			"%d runs cannot frame as matrix 2 of 5", len(runs))
	}
	wn, err := runsToWN(runs)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(wn, matrixGuardWN) || !strings.HasSuffix(wn, matrixGuardWN) {
		return "", errors.Wrap(symbol.ErrUnencodableCharacters,
			"pattern does not have matrix 2 of 5 guards")
	}

	body := wn[len(matrixGuardWN) : len(wn)-len(matrixGuardWN)]
	digits := make([]byte, 0, len(body)/6)
	for at := 0; at+6 <= len(body); at += 6 {
		if body[at] != 'n' {
			return "", errors.Wrap(symbol.ErrUndecodableCharacters,
				"inter-symbol space is wide")
		}
		d, ok := lookupWN(body[at+1 : at+6])
		if !ok {
			return "", errors.Wrapf(symbol.ErrUndecodableCharacters,
				"symbol pattern %q matches no digit", body[at+1:at+6])
		}
		digits = append(digits, d)
	}
	if body[len(body)-1] != 'n' {
		return "", errors.Wrap(symbol.ErrUndecodableCharacters,
			"inter-symbol space is wide")
	}
	return string(digits), nil
}
