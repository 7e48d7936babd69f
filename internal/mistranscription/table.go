// Package mistranscription suggests checksum-valid corrections for IBANs that
// were mistyped or misread, based on a table of commonly confused characters.
package mistranscription

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"fjacquet/iban-check/internal/ibanerror"

	"gopkg.in/yaml.v3"
)

//go:embed mistranscriptions.yaml
var embeddedTable []byte

// EmbeddedSource names the table compiled into the binary in errors and logs.
const EmbeddedSource = "embedded mistranscription table"

// alphabet lists every character the table must describe.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Table maps a transcribed character to the characters it was plausibly
// meant to be, in order of preference. It is immutable once loaded.
type Table struct {
	entries map[byte][]byte
}

// Load decodes and validates a YAML table: one entry per digit and upper case
// letter, every key and listed character a single digit or upper case letter.
func Load(r io.Reader, source string) (*Table, error) {
	var raw map[string][]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &ibanerror.DataIntegrityError{Source: source, Reason: "cannot decode mistranscription table", Err: err}
	}
	if len(raw) != len(alphabet) {
		return nil, &ibanerror.DataIntegrityError{
			Source: source,
			Reason: fmt.Sprintf("expected %d entries, found %d", len(alphabet), len(raw)),
		}
	}

	t := &Table{entries: make(map[byte][]byte, len(raw))}
	for key, values := range raw {
		if !isTableChar(key) {
			return nil, &ibanerror.DataIntegrityError{Source: source, Record: key, Reason: "key is not a single digit or upper case letter"}
		}
		confusions := make([]byte, 0, len(values))
		for _, value := range values {
			if !isTableChar(value) {
				return nil, &ibanerror.DataIntegrityError{Source: source, Record: key, Reason: fmt.Sprintf("invalid confusion %q", value)}
			}
			confusions = append(confusions, value[0])
		}
		t.entries[key[0]] = confusions
	}
	return t, nil
}

// LoadFile loads a table from the YAML file at path.
func LoadFile(path string) (*Table, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, &ibanerror.DataIntegrityError{Source: path, Reason: "cannot open mistranscription table", Err: err}
	}
	defer func() {
		_ = file.Close()
	}()
	return Load(file, path)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the embedded table, parsed once on first use.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Load(bytes.NewReader(embeddedTable), EmbeddedSource)
	})
	return defaultTable, defaultErr
}

// Confusions returns the characters c may have been meant to be. The
// returned slice must not be modified.
func (t *Table) Confusions(c byte) []byte {
	return t.entries[c]
}

// Len returns the number of characters in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

func isTableChar(s string) bool {
	return len(s) == 1 && bytes.IndexByte([]byte(alphabet), s[0]) >= 0
}
