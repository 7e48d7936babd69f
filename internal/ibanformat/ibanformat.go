// Package ibanformat converts IBANs between their machine, human and
// obfuscated presentations.
package ibanformat

import (
	"strings"
	"unicode/utf8"
)

// GroupSize is the number of characters per group in human format, as
// recommended by the ECBS implementation guidelines.
const GroupSize = 4

// ToMachine converts an IBAN to machine format: uppercase, every character
// that is not a basic Latin letter or ASCII digit dropped, and a leading
// "IBAN" or "IIBAN" token removed.
//
// Unlike a single optional prefix, tokens are stripped after separators are
// dropped and repeatedly, so ToMachine(ToHuman(m)) == m for any machine value m.
//
// ToMachine is total; a value without an IBAN shape is rejected later by the
// length and format checks.
func ToMachine(iban string) string {
	iban = strings.TrimSpace(upperASCII(iban))

	var b strings.Builder
	b.Grow(len(iban))
	for i := 0; i < len(iban); i++ {
		c := iban[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return stripPrefix(b.String())
}

// stripPrefix removes leading IBAN/IIBAN tokens. It runs after separators
// are dropped and repeats until none is left, so that ToMachine(ToHuman(m))
// always equals m for a machine format value m.
func stripPrefix(iban string) string {
	for {
		switch {
		case strings.HasPrefix(iban, "IIBAN"):
			iban = iban[len("IIBAN"):]
		case strings.HasPrefix(iban, "IBAN"):
			iban = iban[len("IBAN"):]
		default:
			return iban
		}
	}
}

// ToHuman removes existing spaces and inserts a space every four characters.
// The final group may be shorter than four.
func ToHuman(iban string) string {
	iban = strings.ReplaceAll(iban, " ", "")
	n := utf8.RuneCountInString(iban)
	if n <= GroupSize {
		return iban
	}

	var b strings.Builder
	b.Grow(len(iban) + n/GroupSize)
	i := 0
	for _, r := range iban {
		if i > 0 && i%GroupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

// ToObfuscated masks everything but the country code and the final four
// characters, then returns the result in human format:
//
//	HU69107000246667654851100005 -> HU** **** **** **** **** **** 0005
//
// The checksum is masked because in countries with few banks and branches
// it can be used to infer the rest of the IBAN. The trailing four characters
// only help a user tell stored accounts apart and must not be treated as
// secret.
func ToObfuscated(iban string) string {
	iban = ToMachine(iban)
	if len(iban) <= 2+GroupSize {
		return ToHuman(iban)
	}

	var b strings.Builder
	b.Grow(len(iban))
	b.WriteString(iban[:2])
	b.WriteString(strings.Repeat("*", len(iban)-2-GroupSize))
	b.WriteString(iban[len(iban)-GroupSize:])
	return ToHuman(b.String())
}

// upperASCII uppercases a-z only so that non-Latin letters never fold into
// the A-Z range.
func upperASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}
