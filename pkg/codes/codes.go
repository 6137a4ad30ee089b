// Package codes generates short human-enterable invite codes.
package codes

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet is the 32-symbol set codes are drawn from. It excludes the
// characters most easily confused on a screen or printout (0/O, 1/I).
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the fixed number of characters in a code.
const Length = 6

// Generate returns a new random code of Length characters from Alphabet.
// Codes are not globally unique identifiers; callers that look one up must
// disambiguate on validity.
func Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("codes: failed to read random bytes: %w", err)
	}

	out := make([]byte, Length)
	for i, b := range buf {
		// Alphabet length is a power of two, so masking keeps the draw uniform.
		out[i] = Alphabet[int(b)&(len(Alphabet)-1)]
	}
	return string(out), nil
}

// Normalize canonicalizes user input for comparison: surrounding whitespace
// is dropped and letters are upper-cased.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
