// Package checksum implements the weighted modular check digits used by the
// linear symbologies in this module.
//
// Every symbology in scope derives its check digit the same way: assign a
// repeating weight sequence to the digit positions counted from one end of
// the payload, sum digit times weight, and take the modular complement of the
// sum. Symbologies differ only in the weight sequence and the end it anchors
// to, so each supplies a Rule and shares the algorithm.
package checksum

// Rule describes one symbology's check digit computation.
//
// Weights cycles over digit positions starting from the anchored end of the
// string: position 0 gets Weights[0], position 1 gets Weights[1], wrapping as
// needed. FromRight anchors position 0 at the last (rightmost) digit; the GS1
// and 2-of-5 rules both count from the right. Modulus defaults to 10 when
// zero, which is the only modulus used in this module.
type Rule struct {
	Weights   []int
	FromRight bool
	Modulus   int
}

func (r Rule) modulus() int {
	if r.Modulus == 0 {
		return 10
	}
	return r.Modulus
}

// Generate returns the check digit for the payload digits.
//
// The input must already be length- and charset-validated by the caller (the
// symbology constructor); Generate itself cannot fail on validated input.
// Non-digit bytes contribute garbage rather than an error, same as indexing
// past a validated length would.
func (r Rule) Generate(digits string) int {
	m := r.modulus()
	sum := 0
	for i := 0; i < len(digits); i++ {
		pos := i
		if r.FromRight {
			pos = len(digits) - 1 - i
		}
		sum += int(digits[pos]-'0') * r.Weights[i%len(r.Weights)]
	}
	return (m - (sum % m)) % m
}

// Validate splits the final character off digitsWithCheck as the claimed
// check digit, regenerates the digit from the remainder, and compares.
//
// It returns false rather than an error on any mismatch or on input too short
// to carry a check digit; whether false is fatal is the caller's decision.
func (r Rule) Validate(digitsWithCheck string) bool {
	if len(digitsWithCheck) < 2 {
		return false
	}
	last := digitsWithCheck[len(digitsWithCheck)-1]
	if last < '0' || last > '9' {
		return false
	}
	return r.Generate(digitsWithCheck[:len(digitsWithCheck)-1]) == int(last-'0')
}
