package mistranscription

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/iban-check/internal/ibanerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullTable renders a valid table, applying override to individual lines.
func fullTable(override func(key string, line string) string) string {
	var b strings.Builder
	for i := 0; i < len(alphabet); i++ {
		key := string(alphabet[i])
		line := `"` + key + `": ["` + string(alphabet[(i+1)%len(alphabet)]) + `"]`
		if override != nil {
			line = override(key, line)
		}
		if line != "" {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func TestDefault(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 36, table.Len())
	assert.Equal(t, []byte("ODQ869"), table.Confusions('0'))
	assert.Equal(t, []byte("1LJT"), table.Confusions('I'))
	assert.Nil(t, table.Confusions('-'))

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, table, again)
}

func TestLoad(t *testing.T) {
	table, err := Load(strings.NewReader(fullTable(nil)), "test")
	require.NoError(t, err)
	assert.Equal(t, 36, table.Len())
	assert.Equal(t, []byte("1"), table.Confusions('0'))
}

func TestLoadIntegrityFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not yaml", input: "\"0\": [unterminated"},
		{name: "missing entry", input: fullTable(func(key, line string) string {
			if key == "Q" {
				return ""
			}
			return line
		})},
		{name: "extra entry", input: fullTable(nil) + `"-": ["0"]` + "\n"},
		{name: "lower case key replacing upper", input: fullTable(func(key, line string) string {
			if key == "A" {
				return `"a": ["4"]`
			}
			return line
		})},
		{name: "multi character key", input: fullTable(func(key, line string) string {
			if key == "B" {
				return `"BB": ["8"]`
			}
			return line
		})},
		{name: "invalid confusion", input: fullTable(func(key, line string) string {
			if key == "C" {
				return `"C": ["G", "oo"]`
			}
			return line
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Load(strings.NewReader(tt.input), "test")
			assert.Nil(t, table)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ibanerror.ErrDataIntegrity), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullTable(nil)), 0o600))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 36, table.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, ibanerror.ErrDataIntegrity))
}
