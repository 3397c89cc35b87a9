package symbol

// Default rendering alphabets. A bar is rendered as DefaultLineChar and a
// space as DefaultSpaceChar; wide/narrow renderings use DefaultWideChar and
// DefaultNarrowChar.
const (
	DefaultLineChar   = '1'
	DefaultSpaceChar  = '0'
	DefaultWideChar   = 'w'
	DefaultNarrowChar = 'n'
)

// Options configure symbology construction and rendering. The zero value is
// usable: unset characters take the package defaults, and both checksum flags
// default to false (the check digit is generated and appended).
//
// ChecksumIncluded declares that the supplied value already carries its check
// digit as its final digit; construction validates it rather than generating
// a new one. SkipChecksum omits the check digit entirely; it is only honored
// by symbologies whose check digit is optional and is ignored by those where
// the digit is structural (the EAN/UPC family). If both flags are set,
// ChecksumIncluded wins.
type Options struct {
	LineChar   byte
	SpaceChar  byte
	WideChar   byte
	NarrowChar byte

	ChecksumIncluded bool
	SkipChecksum     bool
}

// Normalized returns a copy of o with zero-valued characters replaced by the
// package defaults. Symbology constructors normalize once on entry so the
// stored options are always complete.
func (o Options) Normalized() Options {
	if o.LineChar == 0 {
		o.LineChar = DefaultLineChar
	}
	if o.SpaceChar == 0 {
		o.SpaceChar = DefaultSpaceChar
	}
	if o.WideChar == 0 {
		o.WideChar = DefaultWideChar
	}
	if o.NarrowChar == 0 {
		o.NarrowChar = DefaultNarrowChar
	}
	return o
}
