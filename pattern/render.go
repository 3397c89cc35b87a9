package pattern

import (
	"fmt"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/pkg/errors"
)

// Bars expands each run to repeated bar/space characters, one character per
// encoding unit.
func Bars(p Pattern, line, space byte) string {
	b := &strings.Builder{}
	b.Grow(p.Units())
	for i, run := range p {
		c := line
		if i%2 == 1 {
			c = space
		}
		for ; run > 0; run-- {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// RLE renders the run lengths as concatenated decimal digits with no
// separators; the first digit is always a bar run.
//
// Every run produced by the tables in this module is 1-4 units, so single
// digits always suffice. A run of 10 or more would mean a malformed table,
// which the load-time table validation already rules out, so RLE panics on
// it rather than returning an error.
func RLE(p Pattern) string {
	b := &strings.Builder{}
	b.Grow(len(p))
	for _, run := range p {
		if run < 1 || run > 9 {
			panic(fmt.Sprintf("pattern: run length %d cannot be a single RLE digit", run))
		}
		b.WriteByte(byte('0' + run))
	}
	return b.String()
}

// WN renders each run as wide or narrow, mapping the narrower observed width
// to the narrow character and the wider to the wide character.
//
// WN is only defined for patterns whose runs take at most two distinct
// widths; the EAN/UPC family's 1-4 unit runs have no wide/narrow reduction,
// and rendering them fails with symbol.ErrNotImplemented.
func WN(p Pattern, wide, narrow byte) (string, error) {
	narrowWidth, wideWidth := 0, 0
	for _, run := range p {
		switch {
		case narrowWidth == 0 || run == narrowWidth:
			narrowWidth = run
		case wideWidth == 0 || run == wideWidth:
			wideWidth = run
		default:
			return "", errors.Wrapf(symbol.ErrNotImplemented,
				"pattern has more than two distinct run widths (%d, %d, %d)",
				narrowWidth, wideWidth, run)
		}
	}
	if wideWidth != 0 && wideWidth < narrowWidth {
		narrowWidth, wideWidth = wideWidth, narrowWidth
	}

	b := &strings.Builder{}
	b.Grow(len(p))
	for _, run := range p {
		if run == narrowWidth {
			b.WriteByte(narrow)
		} else {
			b.WriteByte(wide)
		}
	}
	return b.String(), nil
}
