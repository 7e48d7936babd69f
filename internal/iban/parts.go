package iban

import (
	"fjacquet/iban-check/internal/ibanformat"
	"fjacquet/iban-check/internal/registry"
)

// Parts holds every structural field of an IBAN.
type Parts struct {
	Country          string `json:"country" yaml:"country"`
	Checksum         string `json:"checksum" yaml:"checksum"`
	BBAN             string `json:"bban" yaml:"bban"`
	Bank             string `json:"bank" yaml:"bank"`
	Branch           string `json:"branch" yaml:"branch"`
	Account          string `json:"account" yaml:"account"`
	NationalChecksum string `json:"national_checksum" yaml:"national_checksum"`
}

// CountryPart returns the two-character country code of an IBAN.
func CountryPart(iban string) string {
	return span(ibanformat.ToMachine(iban), 0, 2)
}

// ChecksumPart returns the two IBAN check digits.
func ChecksumPart(iban string) string {
	return span(ibanformat.ToMachine(iban), 2, 4)
}

// BBANPart returns everything after the country code and check digits.
func BBANPart(iban string) string {
	machine := ibanformat.ToMachine(iban)
	return span(machine, 4, len(machine))
}

// BankPart returns the bank identifier, or "" when the country has none.
func (v *Validator) BankPart(iban string) (string, error) {
	return v.field(iban, func(f registry.CountryFormat, bban string) string {
		return f.Bank.Slice(bban)
	})
}

// BranchPart returns the branch identifier, or "" when the country has none.
func (v *Validator) BranchPart(iban string) (string, error) {
	return v.field(iban, func(f registry.CountryFormat, bban string) string {
		return f.Branch.Slice(bban)
	})
}

// AccountPart returns the part of the BBAN after the branch identifier, after
// the bank identifier when there is no branch, or the whole BBAN when neither
// exists.
func (v *Validator) AccountPart(iban string) (string, error) {
	return v.field(iban, accountOf)
}

// NationalChecksumPart returns the national check characters, or "" when the
// country defines none.
func (v *Validator) NationalChecksumPart(iban string) (string, error) {
	return v.field(iban, func(f registry.CountryFormat, bban string) string {
		return f.NationalChecksum.Slice(bban)
	})
}

// Parts returns every structural field of iban at once.
func (v *Validator) Parts(iban string) (Parts, error) {
	machine := ibanformat.ToMachine(iban)
	format, err := v.registry.Get(span(machine, 0, 2))
	if err != nil {
		return Parts{}, err
	}
	bban := span(machine, 4, len(machine))
	return Parts{
		Country:          span(machine, 0, 2),
		Checksum:         span(machine, 2, 4),
		BBAN:             bban,
		Bank:             format.Bank.Slice(bban),
		Branch:           format.Branch.Slice(bban),
		Account:          accountOf(format, bban),
		NationalChecksum: format.NationalChecksum.Slice(bban),
	}, nil
}

func (v *Validator) field(iban string, extract func(registry.CountryFormat, string) string) (string, error) {
	machine := ibanformat.ToMachine(iban)
	format, err := v.registry.Get(span(machine, 0, 2))
	if err != nil {
		return "", err
	}
	return extract(format, span(machine, 4, len(machine))), nil
}

func accountOf(format registry.CountryFormat, bban string) string {
	switch {
	case format.Branch.Present:
		return span(bban, format.Branch.Stop+1, len(bban))
	case format.Bank.Present:
		return span(bban, format.Bank.Stop+1, len(bban))
	default:
		return bban
	}
}

// span returns s[from:to] clamped to the bounds of s.
func span(s string, from, to int) string {
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return ""
	}
	return s[from:to]
}
