package symbol

import "github.com/pkg/errors"

// The error taxonomy shared by every symbology. All of these are fatal to the
// call that raises them; there are no partial results. Call sites wrap them
// with context, so test with errors.Is rather than equality.
var (
	// ErrUnencodableCharacters indicates the input cannot structurally be
	// this symbology at all: wrong character set, wrong length, or a decode
	// input whose start/stop/length shape never matches.
	ErrUnencodableCharacters = errors.New("linearcode: value cannot be encoded in this symbology")

	// ErrChecksum indicates the input has the right shape but its embedded
	// check digit does not match the one regenerated from the payload.
	ErrChecksum = errors.New("linearcode: embedded check digit is incorrect")

	// ErrUndecodableCharacters indicates a decode input framed correctly for
	// this symbology but containing a chunk with no table match.
	ErrUndecodableCharacters = errors.New("linearcode: pattern contains undecodable sections")

	// ErrNotImplemented indicates the requested output format is not defined
	// for this symbology, such as wide/narrow rendering of a family whose
	// bars take more than two widths.
	ErrNotImplemented = errors.New("linearcode: output format not defined for this symbology")
)
