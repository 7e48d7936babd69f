package iban

import (
	"fmt"

	"fjacquet/iban-check/internal/checksum"
	"fjacquet/iban-check/internal/ibanerror"
	"fjacquet/iban-check/internal/ibanformat"
)

// minChecksumLength is the shortest value the MOD97-10 check is defined for:
// country code, check digits and at least one BBAN character.
const minChecksumLength = 5

// VerifyChecksum reports whether the ISO 13616 MOD97-10 checksum of iban
// holds. Only the checksum is examined; use Verify for a full validation.
func (v *Validator) VerifyChecksum(iban string) bool {
	machine := ibanformat.ToMachine(iban)
	if len(machine) < minChecksumLength {
		return false
	}
	remainder, err := v.remainder(machine[4:] + machine[:4])
	if err != nil {
		return false
	}
	return remainder == 1
}

// FindChecksum returns the two check digits iban should carry.
func (v *Validator) FindChecksum(iban string) (string, error) {
	machine := ibanformat.ToMachine(iban)
	if len(machine) < minChecksumLength {
		return "", tooShort(iban)
	}
	remainder, err := v.remainder(machine[4:] + machine[:2] + "00")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d", 98-remainder), nil
}

// SetChecksum returns iban in machine format with its check digits corrected.
func (v *Validator) SetChecksum(iban string) (string, error) {
	machine := ibanformat.ToMachine(iban)
	digits, err := v.FindChecksum(machine)
	if err != nil {
		return "", err
	}
	return machine[:2] + digits + machine[4:], nil
}

// remainder converts a rotated IBAN to digits and reduces it modulo 97.
func (v *Validator) remainder(rotated string) (int, error) {
	digits, err := checksum.ToDigits(rotated)
	if err != nil {
		return 0, err
	}
	return v.backend.Mod97(digits)
}

func tooShort(input string) error {
	return &ibanerror.InputError{
		Algorithm: "iban-mod97-10",
		Input:     input,
		Reason:    fmt.Sprintf("need at least %d characters", minChecksumLength),
	}
}
