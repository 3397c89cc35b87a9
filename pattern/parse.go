package pattern

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-linearcode/symbol"
	"github.com/pkg/errors"
)

// Parse normalizes any of the three textual renderings back into a Pattern.
//
// The rendering is disambiguated by its character set: a string over the
// bar/space alphabet that contains at least one space is an expanded bar
// string, a string of digits 1-9 is run-length encoded, and a string over
// the wide/narrow alphabet is a wide/narrow rendering (narrow runs parse as
// one unit, wide runs as WideUnits). Anything else cannot be a rendering of
// this module's symbologies at all and fails with
// symbol.ErrUnencodableCharacters.
func Parse(s string, o symbol.Options) (Pattern, error) {
	o = o.Normalized()
	if s == "" {
		return nil, errors.Wrap(symbol.ErrUnencodableCharacters, "empty pattern")
	}

	switch classify(s, o) {
	case barsForm:
		return parseBars(s, o.LineChar, o.SpaceChar)
	case rleForm:
		p := make(Pattern, len(s))
		for i := 0; i < len(s); i++ {
			p[i] = int(s[i] - '0')
		}
		return p, nil
	case wnForm:
		p := make(Pattern, len(s))
		for i := 0; i < len(s); i++ {
			p[i] = 1
			if s[i] == o.WideChar {
				p[i] = WideUnits
			}
		}
		return p, nil
	}
	return nil, errors.Wrapf(symbol.ErrUnencodableCharacters,
		"%q is not a bar, RLE, or wide/narrow string", s)
}

type renderForm int

const (
	unknownForm renderForm = iota
	barsForm
	rleForm
	wnForm
)

func classify(s string, o symbol.Options) renderForm {
	isBars, isRLE, isWN := true, true, true
	hasSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != o.LineChar && c != o.SpaceChar {
			isBars = false
		}
		hasSpace = hasSpace || c == o.SpaceChar
		if c < '1' || c > '9' {
			isRLE = false
		}
		if c != o.WideChar && c != o.NarrowChar {
			isWN = false
		}
	}
	switch {
	// a bar string with no spaces is one solid bar; no symbology renders
	// that, but an all-ones RLE string is at least well-formed
	case isBars && hasSpace:
		return barsForm
	case isRLE:
		return rleForm
	case isWN:
		return wnForm
	}
	return unknownForm
}

func parseBars(s string, line, space byte) (Pattern, error) {
	if s[0] != line {
		return nil, errors.Wrap(symbol.ErrUnencodableCharacters,
			"bar strings must start with a bar")
	}
	var p Pattern
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			run++
			continue
		}
		p = append(p, run)
		run = 1
	}
	return append(p, run), nil
}
