package root_test

import (
	"sync"
	"testing"

	"fjacquet/iban-check/cmd/root"
	"fjacquet/iban-check/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initOnce sync.Once

func initRoot() {
	initOnce.Do(root.Init)
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "iban-check", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "validate, format and repair IBANs")
	assert.Contains(t, root.Cmd.Long, "SWIFT IBAN registry")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Flags(t *testing.T) {
	initRoot()

	flags := map[string]string{
		"input":         "i",
		"output":        "o",
		"log-level":     "",
		"log-format":    "",
		"backend":       "",
		"csv-delimiter": "",
	}
	for name, shorthand := range flags {
		flag := root.Cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, shorthand, flag.Shorthand, name)
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	root.ApplyFlags(cfg, root.CommonFlags{
		LogLevel:  "debug",
		Backend:   "decimal",
		Delimiter: ";",
	})

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "decimal", cfg.Checksum.Backend)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
}

func TestGetLogger_BeforeContainer(t *testing.T) {
	assert.NotNil(t, root.GetLogger())
}
