// Package checksum implements the numeric check-digit algorithms used by the
// IBAN and national account number validators.
package checksum

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/iban-check/internal/ibanerror"

	"github.com/shopspring/decimal"
)

// Backend names accepted by BackendByName.
const (
	BackendChunked = "chunked"
	BackendDecimal = "decimal"
)

// maxChunkDigits bounds every intermediate value of the chunked reduction so
// that it fits comfortably in a 32-bit integer.
const maxChunkDigits = 9

// Backend reduces a decimal digit string modulo 97.
type Backend interface {
	Name() string
	Mod97(digits string) (int, error)
}

// ChunkedBackend reduces the digit string left to right, carrying the running
// remainder into the next chunk of at most nine digits.
type ChunkedBackend struct{}

// Name returns the configuration name of the backend.
func (ChunkedBackend) Name() string { return BackendChunked }

// Mod97 returns digits mod 97.
func (ChunkedBackend) Mod97(digits string) (int, error) {
	if err := requireDigits("mod97", digits); err != nil {
		return 0, err
	}

	remainder := 0
	for i := 0; i < len(digits); {
		prefix := ""
		if i > 0 {
			prefix = strconv.Itoa(remainder)
		}
		end := i + maxChunkDigits - len(prefix)
		if end > len(digits) {
			end = len(digits)
		}
		chunk, err := strconv.Atoi(prefix + digits[i:end])
		if err != nil {
			return 0, &ibanerror.InputError{Algorithm: "mod97", Input: digits, Reason: err.Error()}
		}
		remainder = chunk % 97
		i = end
	}
	return remainder, nil
}

// DecimalBackend performs the reduction with arbitrary precision arithmetic.
type DecimalBackend struct{}

var ninetySeven = decimal.NewFromInt(97)

// Name returns the configuration name of the backend.
func (DecimalBackend) Name() string { return BackendDecimal }

// Mod97 returns digits mod 97.
func (DecimalBackend) Mod97(digits string) (int, error) {
	if err := requireDigits("mod97", digits); err != nil {
		return 0, err
	}
	value, err := decimal.NewFromString(digits)
	if err != nil {
		return 0, &ibanerror.InputError{Algorithm: "mod97", Input: digits, Reason: err.Error()}
	}
	return int(value.Mod(ninetySeven).IntPart()), nil
}

// BackendByName returns the backend registered under name. An empty name
// selects the chunked backend.
func BackendByName(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendChunked:
		return ChunkedBackend{}, nil
	case BackendDecimal:
		return DecimalBackend{}, nil
	default:
		return nil, fmt.Errorf("unknown checksum backend %q (expected %s or %s)", name, BackendChunked, BackendDecimal)
	}
}

// ToDigits replaces every letter of an uppercase alphanumeric string with its
// two-digit value (A=10 ... Z=35). Digits are copied unchanged.
func ToDigits(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteString(strconv.Itoa(int(c-'A') + 10))
		default:
			return "", &ibanerror.InputError{Algorithm: "alphanumeric", Input: s, Reason: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	return b.String(), nil
}

func requireDigits(algorithm, digits string) error {
	if digits == "" {
		return &ibanerror.InputError{Algorithm: algorithm, Input: digits, Reason: "empty input"}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return &ibanerror.InputError{Algorithm: algorithm, Input: digits, Reason: fmt.Sprintf("non-digit character %q at position %d", digits[i], i)}
		}
	}
	return nil
}
