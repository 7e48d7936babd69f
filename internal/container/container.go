// Package container provides dependency injection for the iban-check
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/iban-check/internal/batch"
	"fjacquet/iban-check/internal/camtscan"
	"fjacquet/iban-check/internal/checksum"
	"fjacquet/iban-check/internal/config"
	"fjacquet/iban-check/internal/iban"
	"fjacquet/iban-check/internal/logging"
	"fjacquet/iban-check/internal/mistranscription"
	"fjacquet/iban-check/internal/registry"
)

// Container holds all application dependencies and provides methods to
// access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	registry  *registry.Registry
	table     *mistranscription.Table
	validator *iban.Validator
	engine    *mistranscription.Engine
	processor *batch.Processor
	scanner   *camtscan.Scanner
}

// NewContainer creates and wires all application dependencies.
//
// The country registry and mistranscription table come from the files named
// in cfg, or from the embedded copies when those are empty. Either failing to
// load is fatal for the container.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))

	reg, err := loadRegistry(cfg.Registry.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load IBAN registry: %w", err)
	}

	table, err := loadTable(cfg.Mistranscriptions.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load mistranscription table: %w", err)
	}

	backend, err := checksum.BackendByName(cfg.Checksum.Backend)
	if err != nil {
		return nil, err
	}

	validator := iban.NewValidator(reg,
		iban.WithBackend(backend),
		iban.WithLogger(logger))

	engineOpts := []mistranscription.Option{mistranscription.WithLogger(logger)}
	if cfg.Suggest.NationalFilter {
		engineOpts = append(engineOpts, mistranscription.WithNationalChecksumFilter())
	}
	engine := mistranscription.NewEngine(validator, table, engineOpts...)

	processor := batch.NewProcessor(validator, engine, cfg.Batch.Workers, logger)
	scanner := camtscan.NewScanner(logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldSource, Value: reg.Source()},
		logging.Field{Key: logging.FieldCount, Value: reg.Len()},
		logging.Field{Key: logging.FieldBackend, Value: backend.Name()},
		logging.Field{Key: logging.FieldWorkers, Value: processor.Workers()})

	return &Container{
		logger:    logger,
		config:    cfg,
		registry:  reg,
		table:     table,
		validator: validator,
		engine:    engine,
		processor: processor,
		scanner:   scanner,
	}, nil
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default()
	}
	return registry.LoadFile(path)
}

func loadTable(path string) (*mistranscription.Table, error) {
	if path == "" {
		return mistranscription.Default()
	}
	return mistranscription.LoadFile(path)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRegistry returns the loaded country registry.
func (c *Container) GetRegistry() *registry.Registry {
	return c.registry
}

// GetTable returns the loaded mistranscription table.
func (c *Container) GetTable() *mistranscription.Table {
	return c.table
}

// GetValidator returns the IBAN validator.
func (c *Container) GetValidator() *iban.Validator {
	return c.validator
}

// GetEngine returns the mistranscription suggestion engine.
func (c *Container) GetEngine() *mistranscription.Engine {
	return c.engine
}

// GetProcessor returns the batch processor.
func (c *Container) GetProcessor() *batch.Processor {
	return c.processor
}

// GetScanner returns the CAMT statement scanner.
func (c *Container) GetScanner() *camtscan.Scanner {
	return c.scanner
}

// Delimiter returns the configured CSV delimiter, ',' when unset.
func (c *Container) Delimiter() rune {
	for _, r := range c.config.CSV.Delimiter {
		return r
	}
	return ','
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
