// Package camtscan extracts the IBANs quoted in CAMT.053 bank statements.
package camtscan

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/iban-check/internal/logging"

	"gopkg.in/xmlpath.v2"
)

// Occurrence is one IBAN element found in a statement.
type Occurrence struct {
	Context Context
	IBAN    string
}

// Scanner walks statements with precompiled XPath expressions.
type Scanner struct {
	logger logging.Logger
	paths  []compiledPath
}

type compiledPath struct {
	context Context
	path    *xmlpath.Path
}

// NewScanner creates a scanner. A nil logger discards output.
func NewScanner(logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	paths := make([]compiledPath, 0, len(searchOrder))
	for _, entry := range searchOrder {
		paths = append(paths, compiledPath{context: entry.context, path: xmlpath.MustCompile(entry.xpath)})
	}
	return &Scanner{logger: logger, paths: paths}
}

// Scan opens the statement at path and returns every IBAN it quotes.
func (s *Scanner) Scan(path string) ([]Occurrence, error) {
	file, err := os.Open(path) // #nosec G304 -- path is supplied by the CLI user
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldInputFile, Value: path})
		}
	}()

	occurrences, err := s.ScanReader(file)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Scanned statement",
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(occurrences)})
	return occurrences, nil
}

// ScanReader parses a statement from r. Matches are grouped by context:
// the statement account first, then debtors, then creditors, each group in
// document order. Blank elements are skipped.
func (s *Scanner) ScanReader(r io.Reader) ([]Occurrence, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML file: %w", err)
	}

	occurrences := []Occurrence{}
	for _, p := range s.paths {
		iter := p.path.Iter(root)
		for iter.Next() {
			value := strings.TrimSpace(iter.Node().String())
			if value == "" {
				continue
			}
			occurrences = append(occurrences, Occurrence{Context: p.context, IBAN: value})
		}
	}

	s.logger.Debug("Extracted IBANs from statement",
		logging.Field{Key: logging.FieldCount, Value: len(occurrences)})
	return occurrences, nil
}
