// Package parts handles the parts command
package parts

import (
	"encoding/json"
	"fmt"
	"io"

	"fjacquet/iban-check/cmd/root"
	"fjacquet/iban-check/internal/container"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var outputFormat string

// Cmd represents the parts command
var Cmd = &cobra.Command{
	Use:   "parts <iban>",
	Short: "Split an IBAN into its structural parts",
	Long: `Parts prints the country code, check digits, BBAN, bank, branch, account and
national checksum fields of an IBAN, using the registry offsets for its country.

Example:
  iban-check parts BE68539007547034 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(root.GetContainer(), cmd.OutOrStdout(), args[0], outputFormat)
	},
}

func init() {
	Cmd.Flags().StringVarP(&outputFormat, "format", "f", "yaml", "Output format: yaml or json")
}

// Run writes the parts of input to w in the requested format.
func Run(c *container.Container, w io.Writer, input, format string) error {
	parts, err := c.GetValidator().Parts(input)
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(parts); err != nil {
			return fmt.Errorf("failed to encode parts: %w", err)
		}
		return encoder.Close()
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(parts)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
