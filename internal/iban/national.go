package iban

import (
	"fmt"
	"sort"
	"strings"

	"fjacquet/iban-check/internal/ibanformat"
	"fjacquet/iban-check/internal/logging"
	"fjacquet/iban-check/internal/registry"
)

// Mode selects what a national checksum computation produces.
type Mode int

const (
	// ModeFind computes the national checksum the IBAN should carry.
	ModeFind Mode = iota + 1
	// ModeSet returns the IBAN with its national checksum and IBAN checksum corrected.
	ModeSet
	// ModeVerify reports whether the national checksum holds.
	ModeVerify
)

// String returns the lower case name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFind:
		return "find"
	case ModeSet:
		return "set"
	case ModeVerify:
		return "verify"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "find", "set" or "verify".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "find":
		return ModeFind, nil
	case "set":
		return ModeSet, nil
	case "verify":
		return ModeVerify, nil
	default:
		return 0, fmt.Errorf("unknown national checksum mode %q (expected find, set or verify)", s)
	}
}

// Verdict is the outcome of a national checksum verification.
type Verdict int

const (
	// Unsupported means no national checksum scheme applies to the IBAN.
	Unsupported Verdict = iota
	Valid
	Invalid
)

// String returns the lower case name of the verdict.
func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unsupported"
	}
}

func verdictOf(ok bool) Verdict {
	if ok {
		return Valid
	}
	return Invalid
}

// Result is the outcome of a national checksum computation. Only the field
// matching Mode is meaningful, and only when Supported is true.
type Result struct {
	Mode      Mode
	Supported bool
	Checksum  string  // ModeFind
	IBAN      string  // ModeSet
	Verdict   Verdict // ModeVerify; Unsupported when Supported is false
}

func unsupported(mode Mode) Result {
	return Result{Mode: mode}
}

// nationalInput carries the fields a scheme works on, re-derived from the
// registry for every call.
type nationalInput struct {
	iban    string
	format  registry.CountryFormat
	bban    string
	bank    string
	branch  string
	account string
	current string
}

// nationalScheme computes one country's national checksum in the given mode.
type nationalScheme func(v *Validator, in nationalInput, mode Mode) Result

// NationalChecksum finds, sets or verifies the national checksum embedded in
// the BBAN. Countries without a scheme, IBANs whose length does not match
// the registry, and BBANs the scheme cannot process all yield an unsupported
// result. An error is returned only for an invalid mode.
func (v *Validator) NationalChecksum(iban string, mode Mode) (Result, error) {
	if mode < ModeFind || mode > ModeVerify {
		return Result{}, fmt.Errorf("invalid national checksum mode %d", int(mode))
	}

	in, ok := v.nationalInput(iban)
	if !ok {
		return unsupported(mode), nil
	}
	scheme, ok := nationalSchemes[in.format.Code]
	if !ok {
		v.logger.Debug("no national checksum scheme", logging.Country(in.format.Code))
		return unsupported(mode), nil
	}
	result := scheme(v, in, mode)
	result.Mode = mode
	v.logger.Debug("national checksum computed",
		logging.IBAN(in.iban),
		logging.Field{Key: logging.FieldMode, Value: mode.String()},
		logging.Field{Key: "supported", Value: result.Supported})
	return result, nil
}

// FindNationalChecksum returns the expected national checksum and whether a
// scheme could compute it.
func (v *Validator) FindNationalChecksum(iban string) (string, bool) {
	result, _ := v.NationalChecksum(iban, ModeFind)
	return result.Checksum, result.Supported
}

// SetNationalChecksum returns the IBAN with corrected national and IBAN
// checksums, and whether a scheme could compute them.
func (v *Validator) SetNationalChecksum(iban string) (string, bool) {
	result, _ := v.NationalChecksum(iban, ModeSet)
	return result.IBAN, result.Supported
}

// VerifyNationalChecksum returns the verification verdict for iban.
func (v *Validator) VerifyNationalChecksum(iban string) Verdict {
	result, _ := v.NationalChecksum(iban, ModeVerify)
	return result.Verdict
}

// SupportedNationalCountries returns the sorted codes of every country with a
// national checksum scheme.
func SupportedNationalCountries() []string {
	codes := make([]string, 0, len(nationalSchemes))
	for code := range nationalSchemes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (v *Validator) nationalInput(iban string) (nationalInput, bool) {
	machine := ibanformat.ToMachine(iban)
	format, ok := v.registry.Lookup(span(machine, 0, 2))
	if !ok || len(machine) != format.IBANLength {
		return nationalInput{}, false
	}
	bban := machine[4:]
	return nationalInput{
		iban:    machine,
		format:  format,
		bban:    bban,
		bank:    format.Bank.Slice(bban),
		branch:  format.Branch.Slice(bban),
		account: accountOf(format, bban),
		current: format.NationalChecksum.Slice(bban),
	}, true
}

// standardScheme adapts a function computing the expected national checksum
// to the three modes. A false second return marks the input unsupported.
func standardScheme(expect func(v *Validator, in nationalInput) (string, bool)) nationalScheme {
	return func(v *Validator, in nationalInput, mode Mode) Result {
		expected, ok := expect(v, in)
		if !ok {
			return unsupported(mode)
		}
		return v.applyExpected(in, mode, expected)
	}
}

func (v *Validator) applyExpected(in nationalInput, mode Mode, expected string) Result {
	switch mode {
	case ModeFind:
		return Result{Supported: true, Checksum: expected}
	case ModeSet:
		fixed, ok := v.replaceNational(in, expected)
		if !ok {
			return unsupported(mode)
		}
		return Result{Supported: true, IBAN: fixed}
	default:
		if !in.format.NationalChecksum.Present {
			return unsupported(mode)
		}
		return Result{Supported: true, Verdict: verdictOf(in.current == expected)}
	}
}

// replaceNational writes checksum over the national checksum field and then
// recomputes the IBAN check digits, which the change invalidates.
func (v *Validator) replaceNational(in nationalInput, checksum string) (string, bool) {
	offsets := in.format.NationalChecksum
	if !offsets.Present || offsets.Len() != len(checksum) || offsets.Stop >= len(in.bban) {
		return "", false
	}
	bban := in.bban[:offsets.Start] + checksum + in.bban[offsets.Stop+1:]
	fixed, err := v.SetChecksum(in.iban[:4] + bban)
	if err != nil {
		return "", false
	}
	return fixed, true
}
