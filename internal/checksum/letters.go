package checksum

import (
	"fmt"
	"strings"

	"fjacquet/iban-check/internal/ibanerror"
)

// frenchLetterDigits maps A-I, J-R and S-Z onto 1-9, 1-9 and 2-9.
var frenchLetterDigits = func() [26]byte {
	var table [26]byte
	for i, c := range "ABCDEFGHI" {
		table[c-'A'] = byte('1' + i)
	}
	for i, c := range "JKLMNOPQR" {
		table[c-'A'] = byte('1' + i)
	}
	for i, c := range "STUVWXYZ" {
		table[c-'A'] = byte('2' + i)
	}
	return table
}()

// FrenchLettersToDigits rewrites the letters of a French style BBAN as the
// digits used by the RIB key computation.
func FrenchLettersToDigits(bban string) (string, error) {
	out := make([]byte, len(bban))
	for i := 0; i < len(bban); i++ {
		c := bban[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch {
		case c >= '0' && c <= '9':
			out[i] = c
		case c >= 'A' && c <= 'Z':
			out[i] = frenchLetterDigits[c-'A']
		default:
			return "", inputError("french-letters", bban, fmt.Sprintf("unmapped character %q", bban[i]))
		}
	}
	return string(out), nil
}

const (
	italianLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ-. "
	// ItalianCINLength is the number of characters the CIN is computed over.
	ItalianCINLength = 22
)

var italianOdd = [29]int{1, 0, 5, 7, 9, 13, 15, 17, 19, 21, 2, 4, 18, 20, 11, 3, 6, 8, 12, 14, 16, 10, 22, 25, 24, 23, 27, 28, 26}

// ItalianCheckChar returns the CIN check letter for the 22 characters that
// follow it in an Italian or Sammarinese BBAN.
func ItalianCheckChar(s string) (byte, error) {
	if len(s) != ItalianCINLength {
		return 0, inputError("italian-cin", s, fmt.Sprintf("expected %d characters, got %d", ItalianCINLength, len(s)))
	}
	sum := 0
	for k := 0; k < len(s); k++ {
		var i int
		if c := s[k]; c >= '0' && c <= '9' {
			i = int(c - '0')
		} else if i = strings.IndexByte(italianLetters, c); i < 0 {
			return 0, inputError("italian-cin", s, fmt.Sprintf("unmapped character %q", c))
		}
		if k%2 == 0 {
			sum += italianOdd[i]
		} else {
			sum += i
		}
	}
	return italianLetters[sum%26], nil
}

func inputError(algorithm, input, reason string) error {
	return &ibanerror.InputError{Algorithm: algorithm, Input: input, Reason: reason}
}
