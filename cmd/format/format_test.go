package format_test

import (
	"bytes"
	"testing"

	"fjacquet/iban-check/cmd/format"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCommand_Metadata(t *testing.T) {
	assert.Equal(t, "format <iban>...", format.Cmd.Use)
	assert.Contains(t, format.Cmd.Short, "obfuscated")
	assert.NotNil(t, format.Cmd.Flags().Lookup("style"))
}

func TestRun(t *testing.T) {
	tests := []struct {
		style    string
		expected string
	}{
		{format.StyleMachine, "GB82WEST12345698765432\n"},
		{format.StyleHuman, "GB82 WEST 1234 5698 7654 32\n"},
		{format.StyleObfuscated, "GB** **** **** **** **54 32\n"},
		{format.StyleAll, "machine: GB82WEST12345698765432\nhuman: GB82 WEST 1234 5698 7654 32\nobfuscated: GB** **** **** **** **54 32\n"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, format.Run(&out, []string{"iban gb82west12345698765432"}, tt.style))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestRun_UnknownStyle(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, format.Run(&out, []string{"GB82WEST12345698765432"}, "fancy"))
}
