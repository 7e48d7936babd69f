// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/iban-check/internal/checksum"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	// Registry.File overrides the embedded country registry when set.
	Registry struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"registry" yaml:"registry"`

	// Mistranscriptions.File overrides the embedded confusion table when set.
	Mistranscriptions struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"mistranscriptions" yaml:"mistranscriptions"`

	Checksum struct {
		Backend string `mapstructure:"backend" yaml:"backend"`
	} `mapstructure:"checksum" yaml:"checksum"`

	Suggest struct {
		NationalFilter bool `mapstructure:"national_filter" yaml:"national_filter"`
	} `mapstructure:"suggest" yaml:"suggest"`

	Batch struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"batch" yaml:"batch"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.iban-check")
	v.AddConfigPath(".iban-check")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("IBAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	// Stdout may carry a report, so problems go to the bootstrap logger.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			Logger.Warnf("Ignoring config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration produced by defaults alone,
// ignoring config files and the environment.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		// Defaults are static; a failure here is a programming error.
		panic(fmt.Sprintf("config: default values do not unmarshal: %v", err))
	}
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("registry.file", "")
	v.SetDefault("mistranscriptions.file", "")

	v.SetDefault("checksum.backend", checksum.BackendChunked)

	v.SetDefault("suggest.national_filter", false)

	v.SetDefault("batch.workers", 4)

	v.SetDefault("csv.delimiter", ",")
}

// Validate checks a configuration assembled outside InitializeConfig, such
// as one with command line overrides applied.
func Validate(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if _, err := checksum.BackendByName(config.Checksum.Backend); err != nil {
		return fmt.Errorf("invalid checksum backend: %s (must be '%s' or '%s')",
			config.Checksum.Backend, checksum.BackendChunked, checksum.BackendDecimal)
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > 256 {
		return fmt.Errorf("batch.workers must be between 1 and 256, got: %d", config.Batch.Workers)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
