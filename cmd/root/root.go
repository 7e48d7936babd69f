// Package root contains the root command for the application
package root

import (
	"errors"

	"fjacquet/iban-check/internal/config"
	"fjacquet/iban-check/internal/container"
	"fjacquet/iban-check/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrInvalid is returned by commands that found at least one invalid IBAN,
// so the process exits non-zero.
var ErrInvalid = errors.New("invalid IBAN")

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input     string
	Output    string
	LogLevel  string
	LogFormat string
	Backend   string
	Delimiter string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "iban-check",
		Short: "A CLI tool to validate, format and repair IBANs.",
		Long: `iban-check validates International Bank Account Numbers against the
SWIFT IBAN registry. It converts IBANs between machine, human and obfuscated
formats, computes IBAN and national checksums, and suggests corrections for
mistranscribed input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to iban-check!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initContainer(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer != nil {
				if err := appContainer.Close(); err != nil {
					Log.Warnf("Failed to close container: %v", err)
				}
			}
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (stdin when empty)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (stdout when empty)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (overrides log.level)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format, text or json (overrides log.format)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Backend, "backend", "", "Checksum backend, chunked or decimal (overrides checksum.backend)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Delimiter, "csv-delimiter", "", "CSV delimiter (overrides csv.delimiter)")
}

// initContainer loads configuration, applies flag overrides and builds the
// application container.
func initContainer(cmd *cobra.Command) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	ApplyFlags(cfg, SharedFlags)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	Log = config.ConfigureLoggingFromConfig(cfg)

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	appContainer = c
	return nil
}

// ApplyFlags copies every non-empty flag value over the loaded configuration.
func ApplyFlags(cfg *config.Config, flags CommonFlags) {
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
	if flags.Backend != "" {
		cfg.Checksum.Backend = flags.Backend
	}
	if flags.Delimiter != "" {
		cfg.CSV.Delimiter = flags.Delimiter
	}
}

// GetContainer returns the container built for the running command, or nil
// before PersistentPreRunE has run.
func GetContainer() *container.Container {
	return appContainer
}

// GetLogger returns the container logger, falling back to the shared logrus
// instance before the container exists.
func GetLogger() logging.Logger {
	if appContainer != nil {
		return appContainer.GetLogger()
	}
	return logging.NewLogrusAdapterFromLogger(Log)
}
