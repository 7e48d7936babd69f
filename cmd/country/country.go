// Package country handles the country command
package country

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/iban-check/cmd/root"
	"fjacquet/iban-check/internal/registry"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the country command
var Cmd = &cobra.Command{
	Use:   "country [code]",
	Short: "Show IBAN registry information",
	Long: `Country lists every country in the IBAN registry, or prints the full registry
record of one country when a code is given.

Example:
  iban-check country
  iban-check country CH`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := root.GetContainer().GetRegistry()
		if len(args) == 0 {
			return List(reg, cmd.OutOrStdout())
		}
		return Show(reg, cmd.OutOrStdout(), args[0])
	},
}

// Summary is the YAML view of one registry record.
type Summary struct {
	Code             string `yaml:"code"`
	Name             string `yaml:"name"`
	IBANExample      string `yaml:"iban_example"`
	IBANLength       int    `yaml:"iban_length"`
	IBANFormatRegex  string `yaml:"iban_format_regex"`
	BBANExample      string `yaml:"bban_example"`
	BBANLength       int    `yaml:"bban_length"`
	BBANFormatRegex  string `yaml:"bban_format_regex"`
	DomesticExample  string `yaml:"domestic_example,omitempty"`
	SEPA             bool   `yaml:"sepa"`
	SWIFTOfficial    bool   `yaml:"swift_official"`
	EUMember         bool   `yaml:"eu_member"`
	Membership       string `yaml:"membership"`
	Currency         string `yaml:"currency,omitempty"`
	CentralBankName  string `yaml:"central_bank_name,omitempty"`
	CentralBankURL   string `yaml:"central_bank_url,omitempty"`
	ParentRegistrar  string `yaml:"parent_registrar,omitempty"`
	RegistryEdition  string `yaml:"registry_edition,omitempty"`
	NationalChecksum bool   `yaml:"has_national_checksum"`
}

func summarize(format registry.CountryFormat) Summary {
	return Summary{
		Code:             format.Code,
		Name:             format.Name,
		IBANExample:      format.IBANExample,
		IBANLength:       format.IBANLength,
		IBANFormatRegex:  format.IBANFormatRegex(),
		BBANExample:      format.BBANExample,
		BBANLength:       format.BBANLength,
		BBANFormatRegex:  format.BBANFormatRegex(),
		DomesticExample:  format.DomesticExample,
		SEPA:             format.SEPA,
		SWIFTOfficial:    format.SWIFTOfficial,
		EUMember:         format.IsEUMember(),
		Membership:       format.Membership,
		Currency:         format.Currency,
		CentralBankName:  format.CentralBankName,
		CentralBankURL:   format.CentralBankURL,
		ParentRegistrar:  format.ParentRegistrar,
		RegistryEdition:  format.RegistryEdition,
		NationalChecksum: format.NationalChecksum.Present,
	}
}

// List writes a table of every registry country.
func List(reg *registry.Registry, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "CODE\tNAME\tLENGTH\tSEPA\tEU"); err != nil {
		return err
	}
	for _, code := range reg.Countries() {
		format, _ := reg.Lookup(code)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%t\n",
			format.Code, format.Name, format.IBANLength, format.SEPA, format.IsEUMember()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Show writes the registry record of one country as YAML.
func Show(reg *registry.Registry, w io.Writer, code string) error {
	format, err := reg.Get(code)
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(summarize(format)); err != nil {
		return fmt.Errorf("failed to encode country: %w", err)
	}
	return encoder.Close()
}
