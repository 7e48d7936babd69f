// Package suggest handles the suggest command
package suggest

import (
	"fmt"
	"io"

	"fjacquet/iban-check/cmd/root"
	"fjacquet/iban-check/internal/mistranscription"

	"github.com/spf13/cobra"
)

var nationalFilter bool

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest <iban>",
	Short: "Suggest valid IBANs for a mistranscribed one",
	Long: `Suggest tries the characters a human most often confuses with each character
of the input, one position at a time and then for every occurrence of a repeated
character, and prints each candidate that is a valid IBAN.

With --national-filter, candidates whose national checksum is known to be wrong
are dropped.

Example:
  iban-check suggest GB29NWBK6016I331926819`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := root.GetContainer()
		engine := c.GetEngine()
		if nationalFilter {
			engine = mistranscription.NewEngine(c.GetValidator(), c.GetTable(),
				mistranscription.WithNationalChecksumFilter(),
				mistranscription.WithLogger(c.GetLogger()))
		}
		return Run(engine, cmd.OutOrStdout(), args[0])
	},
}

func init() {
	Cmd.Flags().BoolVar(&nationalFilter, "national-filter", false, "Drop candidates with an invalid national checksum")
}

// Run writes one suggestion per line.
func Run(engine *mistranscription.Engine, w io.Writer, input string) error {
	for _, suggestion := range engine.Suggest(input) {
		if _, err := fmt.Fprintln(w, suggestion); err != nil {
			return err
		}
	}
	return nil
}

