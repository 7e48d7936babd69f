// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/iban-check/internal/logging"
	"fjacquet/iban-check/internal/report"
)

// RecordProcessor validates inputs into report records.
type RecordProcessor interface {
	Process(ctx context.Context, inputs []report.Input) ([]report.Record, error)
}

// OpenInput opens path for reading; an empty path or "-" means stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return file, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// CreateOutput creates path for writing, making parent directories as
// needed; an empty path or "-" means stdout.
func CreateOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(path) // #nosec G304 -- CLI tool requires user-provided output paths
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, nil
}

// ProcessInputs validates inputs, writes the report to outputPath and
// returns the number of invalid IBANs.
func ProcessInputs(ctx context.Context, p RecordProcessor, inputs []report.Input, outputPath string, delimiter rune, log logging.Logger) (int, error) {
	records, err := p.Process(ctx, inputs)
	if err != nil {
		return 0, fmt.Errorf("error validating inputs: %w", err)
	}

	out, err := CreateOutput(outputPath)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close output file")
		}
	}()

	if err := report.WriteRecords(out, records, delimiter); err != nil {
		return 0, err
	}

	invalid := 0
	for _, r := range records {
		if !r.Valid {
			invalid++
		}
	}
	log.Info("Validation report written",
		logging.Field{Key: logging.FieldOutputFile, Value: outputPath},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: "invalid", Value: invalid})
	return invalid, nil
}
