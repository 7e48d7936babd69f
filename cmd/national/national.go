// Package national handles the national command
package national

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/iban-check/cmd/root"
	"fjacquet/iban-check/internal/container"
	"fjacquet/iban-check/internal/iban"

	"github.com/spf13/cobra"
)

// Cmd represents the national command
var Cmd = &cobra.Command{
	Use:   "national <find|set|verify> <iban>",
	Short: "Find, set or verify the national checksum inside the BBAN",
	Long: `National works on the domestic check digits some countries embed in the
BBAN. Setting a national checksum also recomputes the IBAN check digits.
Countries without a known scheme report "unsupported".

Example:
  iban-check national verify BE68539007547034`,
	Args:      cobra.RangeArgs(0, 2),
	ValidArgs: []string{"find", "set", "verify"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if listCountries {
			return ListCountries(cmd.OutOrStdout())
		}
		if len(args) != 2 {
			return fmt.Errorf("expected <find|set|verify> <iban>, got %d arguments", len(args))
		}
		return Run(root.GetContainer(), cmd.OutOrStdout(), args[0], args[1])
	},
}

var listCountries bool

func init() {
	Cmd.Flags().BoolVar(&listCountries, "list", false, "List the countries with a national checksum scheme")
}

// Run executes one national checksum operation and writes its result to w.
func Run(c *container.Container, w io.Writer, operation, input string) error {
	mode, err := iban.ParseMode(operation)
	if err != nil {
		return err
	}

	result, err := c.GetValidator().NationalChecksum(input, mode)
	if err != nil {
		return err
	}
	if !result.Supported {
		_, err := fmt.Fprintln(w, iban.Unsupported.String())
		return err
	}

	switch mode {
	case iban.ModeFind:
		_, err = fmt.Fprintln(w, result.Checksum)
	case iban.ModeSet:
		_, err = fmt.Fprintln(w, result.IBAN)
	default:
		_, err = fmt.Fprintln(w, result.Verdict.String())
		if err == nil && result.Verdict == iban.Invalid {
			return fmt.Errorf("%w: national checksum does not hold", root.ErrInvalid)
		}
	}
	return err
}

// ListCountries writes the supported country codes on one line.
func ListCountries(w io.Writer) error {
	_, err := fmt.Fprintln(w, strings.Join(iban.SupportedNationalCountries(), " "))
	return err
}
