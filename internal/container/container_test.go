package container

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/iban-check/internal/config"
	"fjacquet/iban-check/internal/ibanerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      func() *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      func() *config.Config { return nil },
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "defaults",
			config: config.DefaultConfig,
		},
		{
			name: "decimal backend with json logging",
			config: func() *config.Config {
				cfg := config.DefaultConfig()
				cfg.Log.Level = "debug"
				cfg.Log.Format = "json"
				cfg.Checksum.Backend = "decimal"
				return cfg
			},
		},
		{
			name: "unknown backend",
			config: func() *config.Config {
				cfg := config.DefaultConfig()
				cfg.Checksum.Backend = "bigint"
				return cfg
			},
			expectError: true,
			errorMsg:    "unknown checksum backend",
		},
		{
			name: "missing registry file",
			config: func() *config.Config {
				cfg := config.DefaultConfig()
				cfg.Registry.File = filepath.Join(t.TempDir(), "missing.txt")
				return cfg
			},
			expectError: true,
			errorMsg:    "failed to load IBAN registry",
		},
		{
			name: "missing mistranscription file",
			config: func() *config.Config {
				cfg := config.DefaultConfig()
				cfg.Mistranscriptions.File = filepath.Join(t.TempDir(), "missing.yaml")
				return cfg
			},
			expectError: true,
			errorMsg:    "failed to load mistranscription table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := NewContainer(tt.config())

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, container)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, container)
			assert.NotNil(t, container.GetLogger())
			assert.NotNil(t, container.GetConfig())
			assert.Equal(t, 84, container.GetRegistry().Len())
			assert.Equal(t, 36, container.GetTable().Len())
			assert.NotNil(t, container.GetValidator())
			assert.NotNil(t, container.GetEngine())
			assert.NotNil(t, container.GetProcessor())
			assert.NotNil(t, container.GetScanner())
			assert.Equal(t, container.GetConfig().Checksum.Backend, container.GetValidator().Backend().Name())
			assert.True(t, container.GetValidator().Verify("GB82 WEST 1234 5698 7654 32", false))
			assert.NoError(t, container.Close())
		})
	}
}

func TestNewContainer_CorruptRegistryIsDataIntegrityFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.txt")
	require.NoError(t, os.WriteFile(path, []byte("not|a|registry\n"), 0644))

	cfg := config.DefaultConfig()
	cfg.Registry.File = path

	_, err := NewContainer(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ibanerror.ErrDataIntegrity)
}

func TestNewContainer_NationalFilter(t *testing.T) {
	cfg := config.DefaultConfig()

	unfiltered, err := NewContainer(cfg)
	require.NoError(t, err)
	assert.Len(t, unfiltered.GetEngine().Suggest("BE68589007547034"), 3)

	cfg = config.DefaultConfig()
	cfg.Suggest.NationalFilter = true
	filtered, err := NewContainer(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"BE68539007547034", "BE68589001541034"}, filtered.GetEngine().Suggest("BE68589007547034"))
}

func TestContainer_Delimiter(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CSV.Delimiter = ";"
	container, err := NewContainer(cfg)
	require.NoError(t, err)
	assert.Equal(t, ';', container.Delimiter())

	cfg = config.DefaultConfig()
	cfg.CSV.Delimiter = ""
	container, err = NewContainer(cfg)
	require.NoError(t, err)
	assert.Equal(t, ',', container.Delimiter())
}

func TestContainer_Immutability(t *testing.T) {
	container, err := NewContainer(config.DefaultConfig())
	require.NoError(t, err)

	first := container.GetRegistry().Countries()
	first[0] = "XX"
	assert.NotEqual(t, "XX", container.GetRegistry().Countries()[0])
}
