package main

import (
	"errors"
	"fmt"
	"os"

	"fjacquet/iban-check/cmd/batch"
	"fjacquet/iban-check/cmd/checksum"
	"fjacquet/iban-check/cmd/country"
	"fjacquet/iban-check/cmd/format"
	"fjacquet/iban-check/cmd/national"
	"fjacquet/iban-check/cmd/parts"
	"fjacquet/iban-check/cmd/root"
	"fjacquet/iban-check/cmd/scan"
	"fjacquet/iban-check/cmd/suggest"
	"fjacquet/iban-check/cmd/verify"
	"fjacquet/iban-check/internal/config"
	"fjacquet/iban-check/internal/logging"
)

func init() {
	// .env first so IBAN_LOG_LEVEL can come from it; LoadEnv only logs at
	// debug level, which is below the default.
	config.LoadEnv()

	// Set the level before any logger is created.
	logging.SetAllLogLevels(logging.ParseLevel(os.Getenv("IBAN_LOG_LEVEL")))

	root.Init()

	root.Cmd.AddCommand(verify.Cmd)
	root.Cmd.AddCommand(parts.Cmd)
	root.Cmd.AddCommand(format.Cmd)
	root.Cmd.AddCommand(checksum.Cmd)
	root.Cmd.AddCommand(national.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(country.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(scan.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		// Invalid IBANs were already reported on stdout.
		if !errors.Is(err, root.ErrInvalid) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
