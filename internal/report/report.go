// Package report reads batch inputs and writes validation records as CSV.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

// IBANColumn is the header that must be present in batch input files.
const IBANColumn = "iban"

// SuggestionSeparator joins suggestions inside a single CSV cell.
const SuggestionSeparator = " "

// ErrMissingIBANColumn is returned when the input header has no iban column.
var ErrMissingIBANColumn = errors.New("input has no '" + IBANColumn + "' column")

// Input is one row of a batch input file. Columns other than iban and
// reference are ignored.
type Input struct {
	Reference string `csv:"reference"`
	IBAN      string `csv:"iban"`
}

// Record is the outcome of validating one input.
type Record struct {
	Reference   string `csv:"reference"`
	Input       string `csv:"input"`
	Machine     string `csv:"machine"`
	Human       string `csv:"human"`
	Obfuscated  string `csv:"obfuscated"`
	Country     string `csv:"country"`
	Valid       bool   `csv:"valid"`
	National    string `csv:"national_checksum"`
	Suggestions string `csv:"suggestions"`
}

// SuggestionList splits the Suggestions cell back into its entries.
func (r Record) SuggestionList() []string {
	return strings.Fields(r.Suggestions)
}

// JoinSuggestions renders a suggestion list for the Suggestions cell.
func JoinSuggestions(suggestions []string) string {
	return strings.Join(suggestions, SuggestionSeparator)
}

// headerCheckingReader remembers the header row gocsv consumes so the
// presence of the iban column can be checked after decoding.
type headerCheckingReader struct {
	*csv.Reader
	header []string
}

func (h *headerCheckingReader) ReadAll() ([][]string, error) {
	rows, err := h.Reader.ReadAll()
	if len(rows) > 0 {
		h.header = rows[0]
	}
	return rows, err
}

func (h *headerCheckingReader) hasColumn(name string) bool {
	for _, column := range h.header {
		if strings.EqualFold(strings.TrimSpace(column), name) {
			return true
		}
	}
	return false
}

// ReadInputs decodes a CSV document with a header row. The iban column is
// required; an empty document yields no inputs.
func ReadInputs(r io.Reader, delimiter rune) ([]Input, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = delimiter
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1
	reader := &headerCheckingReader{Reader: csvReader}

	var inputs []Input
	if err := gocsv.UnmarshalCSV(reader, &inputs); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []Input{}, nil
		}
		if reader.header != nil && !reader.hasColumn(IBANColumn) {
			return nil, ErrMissingIBANColumn
		}
		return nil, fmt.Errorf("error parsing batch input: %w", err)
	}
	if !reader.hasColumn(IBANColumn) {
		return nil, ErrMissingIBANColumn
	}
	if inputs == nil {
		inputs = []Input{}
	}
	return inputs, nil
}

// WriteRecords writes records with a header row using delimiter.
func WriteRecords(w io.Writer, records []Record, delimiter rune) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// ReadRecords decodes a report previously written by WriteRecords.
func ReadRecords(r io.Reader, delimiter rune) ([]Record, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = delimiter

	var records []Record
	if err := gocsv.UnmarshalCSV(csvReader, &records); err != nil {
		return nil, fmt.Errorf("error parsing report: %w", err)
	}
	return records, nil
}
