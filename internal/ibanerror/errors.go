// Package ibanerror defines the error taxonomy shared by the IBAN engines.
package ibanerror

import (
	"errors"
	"fmt"
)

var (
	// ErrCountryNotFound is returned when a country code has no registry record.
	ErrCountryNotFound = errors.New("country not found")

	// ErrInvalidInput is returned when a checksum primitive receives characters
	// outside its input domain.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataIntegrity is returned when a persisted table is missing, malformed
	// or incomplete. It is fatal for every lookup that depends on the table.
	ErrDataIntegrity = errors.New("data integrity failure")
)

// NotFoundError represents a lookup of an unknown country code
type NotFoundError struct {
	Country string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("country '%s' not found in IBAN registry", e.Country)
}

func (e *NotFoundError) Unwrap() error {
	return ErrCountryNotFound
}

// InputError represents a value rejected by a checksum algorithm
type InputError struct {
	Algorithm string
	Input     string
	Reason    string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: invalid input '%s': %s", e.Algorithm, e.Input, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// DataIntegrityError represents a registry or mistranscription table that
// could not be loaded or failed structural validation.
type DataIntegrityError struct {
	Source string
	Record string // Optional: the offending record key
	Reason string
	Err    error
}

func (e *DataIntegrityError) Error() string {
	msg := fmt.Sprintf("data integrity failure in %s", e.Source)
	if e.Record != "" {
		msg += fmt.Sprintf(" (record '%s')", e.Record)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Is reports ErrDataIntegrity as a match so callers can test the category
// without caring about the underlying cause.
func (e *DataIntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}

func (e *DataIntegrityError) Unwrap() error {
	return e.Err
}
