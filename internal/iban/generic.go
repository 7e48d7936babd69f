package iban

import (
	"fmt"
	"strconv"

	"fjacquet/iban-check/internal/checksum"
)

// The schemes below are not bound to a country in the dispatch table. They
// apply a generic algorithm to any registered IBAN and use the registry's
// national checksum offsets for set and verify.

// NationalISO7064Mod97_10 computes ISO 7064 MOD 97-10 over the BBAN less its
// two trailing check digits.
func (v *Validator) NationalISO7064Mod97_10(iban string, mode Mode) (Result, error) {
	return v.genericScheme(iban, mode, func(in nationalInput) (string, bool) {
		return mod97_10Expected(v, in)
	})
}

// NationalISO7064Mod11_2 computes ISO 7064 MOD 11-2 over the BBAN with
// dropFront leading and dropEnd trailing characters removed.
func (v *Validator) NationalISO7064Mod11_2(iban string, mode Mode, dropFront, dropEnd int) (Result, error) {
	return v.genericScheme(iban, mode, func(in nationalInput) (string, bool) {
		body, ok := trimBBAN(in.bban, dropFront, dropEnd)
		if !ok {
			return "", false
		}
		expected, err := checksum.ISO7064Mod11_2(body)
		return expected, err == nil
	})
}

// NationalVerhoeff computes a Verhoeff check digit over the BBAN with
// stripFront leading and stripEnd trailing characters removed.
func (v *Validator) NationalVerhoeff(iban string, mode Mode, stripFront, stripEnd int) (Result, error) {
	return v.genericScheme(iban, mode, func(in nationalInput) (string, bool) {
		body, ok := trimBBAN(in.bban, stripFront, stripEnd)
		if !ok {
			return "", false
		}
		d, err := checksum.Verhoeff(body)
		return strconv.Itoa(d), err == nil
	})
}

// NationalDamm computes a Damm check digit over the BBAN less its national
// checksum characters.
func (v *Validator) NationalDamm(iban string, mode Mode) (Result, error) {
	return v.genericScheme(iban, mode, func(in nationalInput) (string, bool) {
		body, ok := trimBBAN(in.bban, 0, len(in.current))
		if !ok {
			return "", false
		}
		d, err := checksum.Damm(body)
		return strconv.Itoa(d), err == nil
	})
}

func (v *Validator) genericScheme(iban string, mode Mode, expect func(nationalInput) (string, bool)) (Result, error) {
	if mode < ModeFind || mode > ModeVerify {
		return Result{}, fmt.Errorf("invalid national checksum mode %d", int(mode))
	}
	in, ok := v.nationalInput(iban)
	if !ok {
		return unsupported(mode), nil
	}
	expected, ok := expect(in)
	if !ok {
		return unsupported(mode), nil
	}
	result := v.applyExpected(in, mode, expected)
	result.Mode = mode
	return result, nil
}

func trimBBAN(bban string, front, end int) (string, bool) {
	if front < 0 || end < 0 || front+end >= len(bban) {
		return "", false
	}
	return bban[front : len(bban)-end], true
}
