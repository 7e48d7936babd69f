package iban

import (
	"errors"
	"strings"
	"testing"

	"fjacquet/iban-check/internal/checksum"
	"fjacquet/iban-check/internal/ibanerror"
	"fjacquet/iban-check/internal/ibanformat"
	"fjacquet/iban-check/internal/logging"
	"fjacquet/iban-check/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T, opts ...Option) *Validator {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	return NewValidator(reg, opts...)
}

func TestVerify(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name              string
		input             string
		machineFormatOnly bool
		want              bool
	}{
		{name: "machine format", input: "GB29NWBK60161331926819", want: true},
		{name: "corrupted checksum", input: "GB28NWBK60161331926819", want: false},
		{name: "human format", input: "GB29 NWBK 6016 1331 9268 19", want: true},
		{name: "lower case with prefix", input: "iban gb29nwbk60161331926819", want: true},
		{name: "punctuation", input: "GB29-NWBK-6016-1331-9268-19", want: true},
		{name: "unknown country", input: "XX29NWBK60161331926819", want: false},
		{name: "too long", input: "GB29NWBK601613319268190", want: false},
		{name: "too short", input: "GB29NWBK6016133192681", want: false},
		{name: "format mismatch", input: "GB29NWBK6016133192681X", want: false},
		{name: "empty", input: "", want: false},
		{name: "single character", input: "G", want: false},
		{name: "strict accepts machine format", input: "GB29NWBK60161331926819", machineFormatOnly: true, want: true},
		{name: "strict rejects spaces", input: "GB29 NWBK 6016 1331 9268 19", machineFormatOnly: true, want: false},
		{name: "strict rejects lower case", input: "gb29nwbk60161331926819", machineFormatOnly: true, want: false},
		{name: "belgium", input: "BE68539007547034", want: true},
		{name: "hungary human format", input: "HU42 1177 3016 1111 1018 0000 0000", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Verify(tt.input, tt.machineFormatOnly))
		})
	}
}

func TestVerifyRegistryExamples(t *testing.T) {
	for _, backend := range []checksum.Backend{checksum.ChunkedBackend{}, checksum.DecimalBackend{}} {
		v := newTestValidator(t, WithBackend(backend))
		for _, code := range v.Registry().Countries() {
			format, _ := v.Registry().Lookup(code)
			assert.True(t, v.Verify(format.IBANExample, false), "%s example with %s backend", code, backend.Name())
			assert.True(t, v.Verify(format.IBANExample, true), "%s example in strict mode", code)
			assert.True(t, v.Verify(ibanformat.ToHuman(format.IBANExample), false), "%s human format", code)
		}
	}
}

func TestChecksumDigitFlipsAreRejected(t *testing.T) {
	v := newTestValidator(t)
	for _, code := range v.Registry().Countries() {
		format, _ := v.Registry().Lookup(code)
		example := format.IBANExample
		for pos := 2; pos <= 3; pos++ {
			for d := byte('0'); d <= '9'; d++ {
				if example[pos] == d {
					continue
				}
				corrupted := example[:pos] + string(d) + example[pos+1:]
				assert.False(t, v.Verify(corrupted, false), "%s with check digit %d set to %c", code, pos, d)
			}
		}
	}
}

func TestFindAndSetChecksum(t *testing.T) {
	v := newTestValidator(t)

	found, err := v.FindChecksum("GB00NWBK60161331926819")
	require.NoError(t, err)
	assert.Equal(t, "29", found)

	fixed, err := v.SetChecksum("gb00 nwbk 6016 1331 9268 19")
	require.NoError(t, err)
	assert.Equal(t, "GB29NWBK60161331926819", fixed)

	// Single digit results are zero padded.
	fixed, err = v.SetChecksum("BE00539007547034")
	require.NoError(t, err)
	assert.Equal(t, "BE68539007547034", fixed)

	for _, code := range v.Registry().Countries() {
		format, _ := v.Registry().Lookup(code)
		broken := format.IBANExample[:2] + "00" + format.IBANExample[4:]

		set, err := v.SetChecksum(broken)
		require.NoError(t, err)
		assert.Equal(t, format.IBANExample, set, code)

		again, err := v.FindChecksum(set)
		require.NoError(t, err)
		assert.Equal(t, ChecksumPart(set), again, "find after set is stable for %s", code)

		reset, err := v.SetChecksum(set)
		require.NoError(t, err)
		assert.Equal(t, set, reset, "set is idempotent for %s", code)
	}
}

func TestChecksumTooShort(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.FindChecksum("GB29")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ibanerror.ErrInvalidInput))

	_, err = v.SetChecksum("")
	assert.Error(t, err)

	assert.False(t, v.VerifyChecksum("GB2"))
	assert.True(t, v.VerifyChecksum("GB29NWBK60161331926819"))
	assert.True(t, v.VerifyChecksum("gb29 nwbk 6016 1331 9268 19"))
}

func TestVerifyLogsObfuscatedIBAN(t *testing.T) {
	mock := logging.NewMockLogger()
	v := newTestValidator(t, WithLogger(mock))

	assert.False(t, v.Verify("GB29NWBK601613319268190", false))

	entries := mock.GetEntriesByLevel("DEBUG")
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		for _, field := range entry.Fields {
			if s, ok := field.Value.(string); ok {
				assert.False(t, strings.Contains(s, "NWBK6016"), "raw IBAN leaked in %q", field.Key)
			}
		}
	}
}

func TestOptionsIgnoreNil(t *testing.T) {
	v := newTestValidator(t, WithBackend(nil), WithLogger(nil))
	assert.Equal(t, checksum.BackendChunked, v.Backend().Name())
	assert.True(t, v.Verify("GB29NWBK60161331926819", false))
}
