// Package iban is the public API for validating, formatting and repairing
// International Bank Account Numbers.
//
// The functions in this package work on the embedded country registry and
// mistranscription table, which are loaded on first use. A failure to load
// either table is returned as an error wrapping ibanerror.ErrDataIntegrity.
package iban

import (
	"sync"

	core "fjacquet/iban-check/internal/iban"
	"fjacquet/iban-check/internal/ibanformat"
	"fjacquet/iban-check/internal/mistranscription"
	"fjacquet/iban-check/internal/registry"
)

// Re-exported types so callers need not import internal packages.
type (
	Parts         = core.Parts
	Mode          = core.Mode
	Result        = core.Result
	Verdict       = core.Verdict
	CountryFormat = registry.CountryFormat
)

// National checksum modes and verdicts.
const (
	ModeFind    = core.ModeFind
	ModeSet     = core.ModeSet
	ModeVerify  = core.ModeVerify
	Unsupported = core.Unsupported
	Valid       = core.Valid
	Invalid     = core.Invalid
)

// InsaneLengthDiagnostic is the single suggestion returned for inputs of
// implausible length.
const InsaneLengthDiagnostic = mistranscription.InsaneLengthDiagnostic

var (
	validatorOnce sync.Once
	validator     *core.Validator
	validatorErr  error

	engineOnce sync.Once
	engine     *mistranscription.Engine
	engineErr  error
)

func defaultValidator() (*core.Validator, error) {
	validatorOnce.Do(func() {
		reg, err := registry.Default()
		if err != nil {
			validatorErr = err
			return
		}
		validator = core.NewValidator(reg)
	})
	return validator, validatorErr
}

func defaultEngine() (*mistranscription.Engine, error) {
	engineOnce.Do(func() {
		v, err := defaultValidator()
		if err != nil {
			engineErr = err
			return
		}
		table, err := mistranscription.Default()
		if err != nil {
			engineErr = err
			return
		}
		engine = mistranscription.NewEngine(v, table)
	})
	return engine, engineErr
}

// Verify reports whether input, in any presentation, is a valid IBAN.
func Verify(input string) (bool, error) {
	v, err := defaultValidator()
	if err != nil {
		return false, err
	}
	return v.Verify(input, false), nil
}

// VerifyMachineFormat is like Verify but rejects anything not already in
// machine format.
func VerifyMachineFormat(input string) (bool, error) {
	v, err := defaultValidator()
	if err != nil {
		return false, err
	}
	return v.Verify(input, true), nil
}

// ToMachineFormat returns the upper case, separator-free form of an IBAN.
func ToMachineFormat(input string) string { return ibanformat.ToMachine(input) }

// ToHumanFormat groups an IBAN into blocks of four characters.
func ToHumanFormat(input string) string { return ibanformat.ToHuman(input) }

// ToObfuscatedFormat masks all but the country code and last four characters.
func ToObfuscatedFormat(input string) string { return ibanformat.ToObfuscated(input) }

// CountryPart returns the country code of an IBAN.
func CountryPart(input string) string { return core.CountryPart(input) }

// ChecksumPart returns the IBAN check digits.
func ChecksumPart(input string) string { return core.ChecksumPart(input) }

// BBANPart returns the basic bank account number.
func BBANPart(input string) string { return core.BBANPart(input) }

// BankPart returns the bank identifier.
func BankPart(input string) (string, error) {
	return withValidator(func(v *core.Validator) (string, error) { return v.BankPart(input) })
}

// BranchPart returns the branch identifier.
func BranchPart(input string) (string, error) {
	return withValidator(func(v *core.Validator) (string, error) { return v.BranchPart(input) })
}

// AccountPart returns the account number part of the BBAN.
func AccountPart(input string) (string, error) {
	return withValidator(func(v *core.Validator) (string, error) { return v.AccountPart(input) })
}

// NationalChecksumPart returns the national check characters.
func NationalChecksumPart(input string) (string, error) {
	return withValidator(func(v *core.Validator) (string, error) { return v.NationalChecksumPart(input) })
}

// GetParts returns every structural field of an IBAN.
func GetParts(input string) (Parts, error) {
	v, err := defaultValidator()
	if err != nil {
		return Parts{}, err
	}
	return v.Parts(input)
}

// VerifyChecksum reports whether the IBAN check digits are correct.
func VerifyChecksum(input string) (bool, error) {
	v, err := defaultValidator()
	if err != nil {
		return false, err
	}
	return v.VerifyChecksum(input), nil
}

// FindChecksum returns the check digits an IBAN should carry.
func FindChecksum(input string) (string, error) {
	return withValidator(func(v *core.Validator) (string, error) { return v.FindChecksum(input) })
}

// SetChecksum returns the IBAN in machine format with corrected check digits.
func SetChecksum(input string) (string, error) {
	return withValidator(func(v *core.Validator) (string, error) { return v.SetChecksum(input) })
}

// NationalChecksum finds, sets or verifies the national checksum.
func NationalChecksum(input string, mode Mode) (Result, error) {
	v, err := defaultValidator()
	if err != nil {
		return Result{}, err
	}
	return v.NationalChecksum(input, mode)
}

// FindNationalChecksum returns the expected national checksum and whether
// the country's scheme could compute it.
func FindNationalChecksum(input string) (string, bool, error) {
	result, err := NationalChecksum(input, ModeFind)
	return result.Checksum, result.Supported, err
}

// SetNationalChecksum returns the IBAN with corrected national and IBAN
// checksums, and whether the country's scheme could compute them.
func SetNationalChecksum(input string) (string, bool, error) {
	result, err := NationalChecksum(input, ModeSet)
	return result.IBAN, result.Supported, err
}

// VerifyNationalChecksum verifies the national checksum.
func VerifyNationalChecksum(input string) (Verdict, error) {
	result, err := NationalChecksum(input, ModeVerify)
	return result.Verdict, err
}

// SupportedNationalCountries lists the countries with a national checksum scheme.
func SupportedNationalCountries() []string { return core.SupportedNationalCountries() }

// MistranscriptionSuggestions returns valid IBANs that input may have been
// mistyped or misread from.
func MistranscriptionSuggestions(input string) ([]string, error) {
	e, err := defaultEngine()
	if err != nil {
		return nil, err
	}
	return e.Suggest(input), nil
}

// Countries returns the codes of every registered country.
func Countries() ([]string, error) {
	reg, err := registry.Default()
	if err != nil {
		return nil, err
	}
	return reg.Countries(), nil
}

// Country returns the registry entry of a country.
func Country(code string) (CountryFormat, error) {
	reg, err := registry.Default()
	if err != nil {
		return CountryFormat{}, err
	}
	return reg.Get(code)
}

// IsEUMember reports whether a registered country is an EU member state.
func IsEUMember(code string) (bool, error) {
	format, err := Country(code)
	if err != nil {
		return false, err
	}
	return format.IsEUMember(), nil
}

func withValidator(fn func(*core.Validator) (string, error)) (string, error) {
	v, err := defaultValidator()
	if err != nil {
		return "", err
	}
	return fn(v)
}
