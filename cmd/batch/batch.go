// Package batch handles batch validation of IBAN lists
package batch

import (
	"context"
	"fmt"

	"fjacquet/iban-check/cmd/common"
	"fjacquet/iban-check/cmd/root"
	"fjacquet/iban-check/internal/container"
	"fjacquet/iban-check/internal/logging"
	"fjacquet/iban-check/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch validate IBANs from a CSV file",
	Long: `Batch validate every IBAN of a CSV file and write a CSV report.

The input needs a header row with an "iban" column; an optional "reference"
column is copied to the report. Each report row carries the machine, human
and obfuscated forms, the country, validity, the national checksum verdict and,
for invalid IBANs, mistranscription suggestions. The command exits non-zero
when any IBAN is invalid.

Example:
  iban-check batch -i accounts.csv -o report.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context(), root.GetContainer(), root.SharedFlags.Input, root.SharedFlags.Output)
	},
}

// Run validates the CSV at inputPath and writes the report to outputPath.
func Run(ctx context.Context, c *container.Container, inputPath, outputPath string) error {
	logger := c.GetLogger()
	logger.Info("Batch command called",
		logging.Field{Key: logging.FieldInputFile, Value: inputPath},
		logging.Field{Key: logging.FieldOutputFile, Value: outputPath})

	in, err := common.OpenInput(inputPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close input file")
		}
	}()

	inputs, err := report.ReadInputs(in, c.Delimiter())
	if err != nil {
		return err
	}

	invalid, err := common.ProcessInputs(ctx, c.GetProcessor(), inputs, outputPath, c.Delimiter(), logger)
	if err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d failed verification", root.ErrInvalid, invalid, len(inputs))
	}
	return nil
}
