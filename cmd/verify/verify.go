// Package verify handles the verify command
package verify

import (
	"fmt"
	"io"

	"fjacquet/iban-check/cmd/root"
	"fjacquet/iban-check/internal/container"

	"github.com/spf13/cobra"
)

var machineOnly bool

// Cmd represents the verify command
var Cmd = &cobra.Command{
	Use:   "verify <iban>...",
	Short: "Verify one or more IBANs",
	Long: `Verify checks each IBAN against the registry: known country, expected length
and structure, and a holding MOD97-10 checksum. The command exits non-zero when
any IBAN is invalid.

Example:
  iban-check verify "GB82 WEST 1234 5698 7654 32" BE68539007547034`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(root.GetContainer(), cmd.OutOrStdout(), args, machineOnly)
	},
}

func init() {
	Cmd.Flags().BoolVar(&machineOnly, "machine-only", false, "Reject input that is not already in machine format")
}

// Run prints one verdict line per input and returns root.ErrInvalid when
// any input fails.
func Run(c *container.Container, w io.Writer, inputs []string, machineFormatOnly bool) error {
	invalid := 0
	for _, input := range inputs {
		status := "valid"
		if !c.GetValidator().Verify(input, machineFormatOnly) {
			status = "invalid"
			invalid++
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", input, status); err != nil {
			return err
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d failed verification", root.ErrInvalid, invalid, len(inputs))
	}
	return nil
}
