package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("IBAN_TEST_PRESENT", "value")

	assert.Equal(t, "value", GetEnv("IBAN_TEST_PRESENT", "fallback"))
	assert.Equal(t, "fallback", GetEnv("IBAN_TEST_MISSING_KEY", "fallback"))
}

func TestFindEnvFile(t *testing.T) {
	parent := t.TempDir()
	child := filepath.Join(parent, "child")
	require.NoError(t, os.Mkdir(child, 0755))

	chdir(t, child)

	_, ok := findEnvFile()
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(parent, ".env"), []byte("IBAN_LOG_LEVEL=debug\n"), 0644))
	path, ok := findEnvFile()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("..", ".env"), path)

	require.NoError(t, os.WriteFile(filepath.Join(child, ".env"), []byte("IBAN_LOG_LEVEL=warn\n"), 0644))
	path, ok = findEnvFile()
	assert.True(t, ok)
	assert.Equal(t, ".env", path)
}
