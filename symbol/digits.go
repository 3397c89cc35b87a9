package symbol

import (
	"strconv"

	"github.com/pkg/errors"
)

// DigitsOf normalizes a symbology input value to its digit-string form.
//
// Strings pass through unchanged, so leading zeros stay significant. Integer
// kinds are formatted in base 10; negative values are rejected since no
// symbology encodes a sign. Any other type cannot be a barcode value.
//
// DigitsOf does not verify the string is numeric; that is the symbology's
// length/charset check, which produces better context about what was wrong.
func DigitsOf(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return formatInt(int64(v))
	case int8:
		return formatInt(int64(v))
	case int16:
		return formatInt(int64(v))
	case int32:
		return formatInt(int64(v))
	case int64:
		return formatInt(v)
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	default:
		return "", errors.Wrapf(ErrUnencodableCharacters,
			"values must be strings or integers, not %T", value)
	}
}

func formatInt(v int64) (string, error) {
	if v < 0 {
		return "", errors.Wrapf(ErrUnencodableCharacters,
			"values cannot be negative, but this is %d", v)
	}
	return strconv.FormatInt(v, 10), nil
}

// IsDigits returns true if s is non-empty and contains only ASCII digits 0-9.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
