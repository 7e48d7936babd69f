package ibanerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Country: "ZZ"}

	assert.Equal(t, "country 'ZZ' not found in IBAN registry", err.Error())
	assert.True(t, errors.Is(err, ErrCountryNotFound))
	assert.False(t, errors.Is(err, ErrInvalidInput))
}

func TestInputError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InputError
		expected string
	}{
		{
			name:     "non numeric",
			err:      &InputError{Algorithm: "verhoeff", Input: "12A", Reason: "non-digit character"},
			expected: "verhoeff: invalid input '12A': non-digit character",
		},
		{
			name:     "empty input",
			err:      &InputError{Algorithm: "damm", Input: "", Reason: "empty input"},
			expected: "damm: invalid input '': empty input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrInvalidInput))
		})
	}
}

func TestDataIntegrityError(t *testing.T) {
	cause := errors.New("unexpected EOF")

	tests := []struct {
		name     string
		err      *DataIntegrityError
		expected string
	}{
		{
			name:     "source only",
			err:      &DataIntegrityError{Source: "registry.txt", Reason: "no records"},
			expected: "data integrity failure in registry.txt: no records",
		},
		{
			name:     "with record and cause",
			err:      &DataIntegrityError{Source: "registry.txt", Record: "GB", Reason: "bad regex", Err: cause},
			expected: "data integrity failure in registry.txt (record 'GB'): bad regex: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrDataIntegrity))
		})
	}

	wrapped := fmt.Errorf("loading: %w", &DataIntegrityError{Source: "x", Reason: "y", Err: cause})
	assert.True(t, errors.Is(wrapped, ErrDataIntegrity))
	assert.True(t, errors.Is(wrapped, cause))
}
