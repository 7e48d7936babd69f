package verify_test

import (
	"bytes"
	"testing"

	"fjacquet/iban-check/cmd/root"
	"fjacquet/iban-check/cmd/verify"
	"fjacquet/iban-check/internal/config"
	"fjacquet/iban-check/internal/container"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	c, err := container.NewContainer(config.DefaultConfig())
	require.NoError(t, err)
	return c
}

func TestVerifyCommand_Metadata(t *testing.T) {
	assert.Equal(t, "verify <iban>...", verify.Cmd.Use)
	assert.Contains(t, verify.Cmd.Short, "Verify")
	assert.Contains(t, verify.Cmd.Long, "Example")
	assert.NotNil(t, verify.Cmd.RunE)
	assert.NotNil(t, verify.Cmd.Flags().Lookup("machine-only"))
}

func TestRun(t *testing.T) {
	c := newContainer(t)

	var out bytes.Buffer
	err := verify.Run(c, &out, []string{"GB82 WEST 1234 5698 7654 32", "BE68539007547034"}, false)
	require.NoError(t, err)
	assert.Equal(t, "GB82 WEST 1234 5698 7654 32: valid\nBE68539007547034: valid\n", out.String())
}

func TestRun_Invalid(t *testing.T) {
	c := newContainer(t)

	var out bytes.Buffer
	err := verify.Run(c, &out, []string{"BE68539007547034", "BE68539007547035"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, root.ErrInvalid)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out.String(), "BE68539007547035: invalid")
}

func TestRun_MachineOnly(t *testing.T) {
	c := newContainer(t)

	var out bytes.Buffer
	err := verify.Run(c, &out, []string{"GB82 WEST 1234 5698 7654 32"}, true)
	assert.ErrorIs(t, err, root.ErrInvalid)
}
