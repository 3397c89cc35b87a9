// Package pattern represents linear barcodes as run-length sequences and
// converts between that canonical form and its textual renderings.
//
// A Pattern is an ordered series of positive run lengths measured in encoding
// units. Runs alternate polarity, bar then space, always starting with a bar;
// the polarity of a run is therefore implied by its index. Symbology packages
// assemble Patterns from their tables and hand them to the renderers here;
// decoding parses any of the textual forms back to a Pattern for the
// symbology to reverse-lookup.
package pattern

import "fmt"

// Pattern is a run-length sequence, bar first, strictly alternating.
type Pattern []int

// Units returns the total width of the pattern in encoding units.
func (p Pattern) Units() (n int) {
	for _, run := range p {
		n += run
	}
	return
}

// Clone returns a copy of p, so immutable value objects can hand out their
// pattern without sharing the backing array.
func (p Pattern) Clone() Pattern {
	out := make(Pattern, len(p))
	copy(out, p)
	return out
}

// Reverse returns a reversed copy of p, the run sequence a scanner would see
// reading the printed code mirror-first.
func (p Pattern) Reverse() Pattern {
	out := make(Pattern, len(p))
	for i, run := range p {
		out[len(p)-1-i] = run
	}
	return out
}

// Builder assembles a Pattern from table pieces, keeping the bar/space
// alternation strict. Table pieces declare the polarity of their first run;
// when a piece starts with the same polarity the previous piece ended on,
// the two adjacent runs merge into one, which is what happens at structural
// joins like a guard meeting a digit group.
type Builder struct {
	runs Pattern
}

// Add appends a piece whose first run is a bar if barFirst is true.
//
// Add panics if the very first piece starts with a space: a Pattern has no
// way to represent a leading space run, so that is a table-design error, not
// a runtime condition.
func (b *Builder) Add(barFirst bool, piece ...int) {
	if len(piece) == 0 {
		return
	}
	if len(b.runs) == 0 {
		if !barFirst {
			panic("pattern: first run must be a bar")
		}
		b.runs = append(b.runs, piece...)
		return
	}
	// the next run is a bar exactly when an even count has been laid down
	nextIsBar := len(b.runs)%2 == 0
	if barFirst == nextIsBar {
		b.runs = append(b.runs, piece...)
		return
	}
	b.runs[len(b.runs)-1] += piece[0]
	b.runs = append(b.runs, piece[1:]...)
}

// Pattern returns the assembled runs.
func (b *Builder) Pattern() Pattern {
	return b.runs
}

// MustRLE parses a run-length-encoded table literal ('1'-'9' per run) into a
// Pattern, panicking on any other character. Symbology tables are parsed
// through this at package init so a malformed table fails at load time.
func MustRLE(rle string) Pattern {
	p := make(Pattern, len(rle))
	for i := 0; i < len(rle); i++ {
		if rle[i] < '1' || rle[i] > '9' {
			panic(fmt.Sprintf("pattern: bad RLE table literal %q", rle))
		}
		p[i] = int(rle[i] - '0')
	}
	return p
}

// MustWN parses a wide/narrow table literal ('w' and 'n' per run) into a
// Pattern with narrow runs one unit wide and wide runs WideUnits wide,
// panicking on any other character.
func MustWN(wn string) Pattern {
	p := make(Pattern, len(wn))
	for i := 0; i < len(wn); i++ {
		switch wn[i] {
		case 'n':
			p[i] = 1
		case 'w':
			p[i] = WideUnits
		default:
			panic(fmt.Sprintf("pattern: bad wide/narrow table literal %q", wn))
		}
	}
	return p
}

// WideUnits is the width of a wide run in a two-width symbology, in units of
// a narrow run. The 2-of-5 family prints wides at two to three times the
// narrow width; the canonical unit form uses the minimum ratio.
const WideUnits = 2
