// Package format handles the format command
package format

import (
	"fmt"
	"io"

	"fjacquet/iban-check/internal/ibanformat"

	"github.com/spf13/cobra"
)

// Styles accepted by --style.
const (
	StyleAll        = "all"
	StyleMachine    = "machine"
	StyleHuman      = "human"
	StyleObfuscated = "obfuscated"
)

var style string

// Cmd represents the format command
var Cmd = &cobra.Command{
	Use:   "format <iban>...",
	Short: "Convert IBANs between machine, human and obfuscated formats",
	Long: `Format rewrites each IBAN in machine format (no spaces, upper case, no IBAN
prefix), human format (groups of four) or obfuscated format (only country code
and last four characters visible). No validation is performed.

Example:
  iban-check format --style human iban gb82west12345698765432`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.OutOrStdout(), args, style)
	},
}

func init() {
	Cmd.Flags().StringVarP(&style, "style", "s", StyleAll, "Output style: all, machine, human or obfuscated")
}

// Run writes every input to w in the given style.
func Run(w io.Writer, inputs []string, style string) error {
	for _, input := range inputs {
		var err error
		switch style {
		case StyleAll:
			_, err = fmt.Fprintf(w, "machine: %s\nhuman: %s\nobfuscated: %s\n",
				ibanformat.ToMachine(input), ibanformat.ToHuman(ibanformat.ToMachine(input)), ibanformat.ToObfuscated(input))
		case StyleMachine:
			_, err = fmt.Fprintln(w, ibanformat.ToMachine(input))
		case StyleHuman:
			_, err = fmt.Fprintln(w, ibanformat.ToHuman(ibanformat.ToMachine(input)))
		case StyleObfuscated:
			_, err = fmt.Fprintln(w, ibanformat.ToObfuscated(input))
		default:
			return fmt.Errorf("unsupported style: %s", style)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
