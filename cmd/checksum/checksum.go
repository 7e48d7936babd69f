// Package checksum handles the checksum command
package checksum

import (
	"fmt"
	"io"

	"fjacquet/iban-check/cmd/root"
	"fjacquet/iban-check/internal/container"
	"fjacquet/iban-check/internal/iban"

	"github.com/spf13/cobra"
)

// Cmd represents the checksum command
var Cmd = &cobra.Command{
	Use:   "checksum <find|set|verify> <iban>",
	Short: "Find, set or verify the IBAN check digits",
	Long: `Checksum works on the two ISO 13616 MOD97-10 check digits only.

  find    prints the check digits the IBAN should carry
  set     prints the IBAN in machine format with corrected check digits
  verify  reports whether the check digits hold (non-zero exit when not)

Example:
  iban-check checksum set GB00WEST12345698765432`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"find", "set", "verify"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(root.GetContainer(), cmd.OutOrStdout(), args[0], args[1])
	},
}

// Run executes one checksum operation and writes its result to w.
func Run(c *container.Container, w io.Writer, operation, input string) error {
	mode, err := iban.ParseMode(operation)
	if err != nil {
		return err
	}
	v := c.GetValidator()

	switch mode {
	case iban.ModeFind:
		digits, err := v.FindChecksum(input)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, digits)
		return err
	case iban.ModeSet:
		corrected, err := v.SetChecksum(input)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, corrected)
		return err
	default:
		if !v.VerifyChecksum(input) {
			_, _ = fmt.Fprintln(w, "invalid")
			return fmt.Errorf("%w: checksum does not hold", root.ErrInvalid)
		}
		_, err := fmt.Fprintln(w, "valid")
		return err
	}
}
