// Package scan handles validation of the IBANs quoted in CAMT.053 statements
package scan

import (
	"context"
	"fmt"

	"fjacquet/iban-check/cmd/common"
	"fjacquet/iban-check/cmd/root"
	"fjacquet/iban-check/internal/camtscan"
	"fjacquet/iban-check/internal/container"
	"fjacquet/iban-check/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the scan command
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Validate the IBANs quoted in a CAMT.053 statement",
	Long: `Scan extracts the statement account IBAN and every debtor and creditor
account IBAN from a CAMT.053 XML statement and writes a validation report.
The report reference column names where each IBAN was found.

Example:
  iban-check scan -i statement.xml -o report.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context(), root.GetContainer(), root.SharedFlags.Input, root.SharedFlags.Output)
	},
}

// Run scans the statement at inputPath and writes the report to outputPath.
func Run(ctx context.Context, c *container.Container, inputPath, outputPath string) error {
	if inputPath == "" {
		return fmt.Errorf("input statement must be specified with --input")
	}

	occurrences, err := c.GetScanner().Scan(inputPath)
	if err != nil {
		return err
	}

	invalid, err := common.ProcessInputs(ctx, c.GetProcessor(), ToInputs(occurrences), outputPath, c.Delimiter(), c.GetLogger())
	if err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d failed verification", root.ErrInvalid, invalid, len(occurrences))
	}
	return nil
}

// ToInputs turns statement occurrences into batch inputs referenced by
// their context.
func ToInputs(occurrences []camtscan.Occurrence) []report.Input {
	inputs := make([]report.Input, 0, len(occurrences))
	for _, o := range occurrences {
		inputs = append(inputs, report.Input{Reference: string(o.Context), IBAN: o.IBAN})
	}
	return inputs
}
