// Package iban slices IBANs into their structural parts, verifies and repairs
// the ISO 13616 checksum, and dispatches to country specific national
// checksum schemes.
package iban

import (
	"fjacquet/iban-check/internal/checksum"
	"fjacquet/iban-check/internal/ibanformat"
	"fjacquet/iban-check/internal/logging"
	"fjacquet/iban-check/internal/registry"
)

// Validator checks IBANs against an immutable country registry. It is safe
// for concurrent use.
type Validator struct {
	registry *registry.Registry
	backend  checksum.Backend
	logger   logging.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithBackend selects the mod 97 backend. The chunked backend is the default.
func WithBackend(backend checksum.Backend) Option {
	return func(v *Validator) {
		if backend != nil {
			v.backend = backend
		}
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(logger logging.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// NewValidator creates a Validator over reg.
func NewValidator(reg *registry.Registry, opts ...Option) *Validator {
	v := &Validator{
		registry: reg,
		backend:  checksum.ChunkedBackend{},
		logger:   logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Registry returns the registry the validator checks against.
func (v *Validator) Registry() *registry.Registry {
	return v.registry
}

// Backend returns the mod 97 backend in use.
func (v *Validator) Backend() checksum.Backend {
	return v.backend
}

// Verify reports whether input is a valid IBAN: the country is known, the
// length and format match the registry, and the checksum holds. Unless
// machineFormatOnly is set the input is normalized first; otherwise it must
// already be in machine format.
func (v *Validator) Verify(input string, machineFormatOnly bool) bool {
	iban := input
	if !machineFormatOnly {
		iban = ibanformat.ToMachine(input)
	}

	format, ok := v.registry.Lookup(CountryPart(iban))
	if !ok {
		v.logger.Debug("unknown country", logging.IBAN(iban))
		return false
	}
	if len(iban) != format.IBANLength {
		v.logger.Debug("length mismatch",
			logging.IBAN(iban),
			logging.Country(format.Code),
			logging.Field{Key: logging.FieldReason, Value: "length"})
		return false
	}
	if !format.MatchIBAN(iban) {
		v.logger.Debug("format mismatch",
			logging.IBAN(iban),
			logging.Country(format.Code),
			logging.Field{Key: logging.FieldReason, Value: "format"})
		return false
	}
	return v.VerifyChecksum(iban)
}
