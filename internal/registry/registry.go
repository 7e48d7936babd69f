// Package registry holds the per-country IBAN structure table: lengths,
// format patterns, field offsets into the BBAN and descriptive metadata.
package registry

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"fjacquet/iban-check/internal/ibanerror"

	"github.com/gocarina/gocsv"
)

//go:embed registry.txt
var embeddedRegistry []byte

// EmbeddedSource names the registry compiled into the binary in errors and logs.
const EmbeddedSource = "embedded registry"

// Membership values.
const (
	MembershipEU    = "eu_member"
	MembershipEFTA  = "efta_member"
	MembershipOther = "other_member"
	MembershipNone  = "non_member"
)

// Offsets is a zero-based inclusive (start, stop) pair into the BBAN.
// Present is false when the field does not exist for the country.
type Offsets struct {
	Start   int
	Stop    int
	Present bool
}

// Slice returns bban[Start..Stop]. Offsets are clamped to the BBAN, so a
// value of the wrong length yields a shorter (possibly empty) slice.
func (o Offsets) Slice(bban string) string {
	if !o.Present || o.Start >= len(bban) || o.Stop < o.Start {
		return ""
	}
	stop := o.Stop + 1
	if stop > len(bban) {
		stop = len(bban)
	}
	return bban[o.Start:stop]
}

// Len returns the number of characters covered by the offsets.
func (o Offsets) Len() int {
	if !o.Present {
		return 0
	}
	return o.Stop - o.Start + 1
}

// CountryFormat describes the IBAN structure of one country.
type CountryFormat struct {
	Code            string
	Name            string
	DomesticExample string
	BBANExample     string
	BBANFormatSWIFT string
	BBANLength      int
	IBANExample     string
	IBANFormatSWIFT string
	IBANLength      int

	Bank             Offsets
	Branch           Offsets
	NationalChecksum Offsets

	RegistryEdition   string
	SEPA              bool
	SWIFTOfficial     bool
	IANA              string
	ISO3166           string
	ParentRegistrar   string
	Currency          string
	CentralBankURL    string
	CentralBankName   string
	Membership        string
	ibanPattern       *regexp.Regexp
	bbanPattern       *regexp.Regexp
	ibanPatternSource string
	bbanPatternSource string
}

// IBANFormatRegex returns the IBAN pattern as stored in the registry.
func (c CountryFormat) IBANFormatRegex() string { return c.ibanPatternSource }

// BBANFormatRegex returns the BBAN pattern as stored in the registry.
func (c CountryFormat) BBANFormatRegex() string { return c.bbanPatternSource }

// MatchIBAN reports whether a machine format IBAN matches the country pattern.
func (c CountryFormat) MatchIBAN(iban string) bool {
	return c.ibanPattern != nil && c.ibanPattern.MatchString(iban)
}

// MatchBBAN reports whether a BBAN matches the country pattern.
func (c CountryFormat) MatchBBAN(bban string) bool {
	return c.bbanPattern != nil && c.bbanPattern.MatchString(bban)
}

// IsEUMember reports whether the country is a member of the European Union.
func (c CountryFormat) IsEUMember() bool {
	return c.Membership == MembershipEU
}

// Registry is an immutable, validated set of country formats.
type Registry struct {
	source    string
	countries map[string]CountryFormat
	codes     []string
}

// record mirrors one row of the pipe-delimited registry file. Numeric and
// boolean columns are decoded by hand so that empty offsets stay distinguishable.
type record struct {
	Country              string `csv:"country"`
	CountryName          string `csv:"country_name"`
	DomesticExample      string `csv:"domestic_example"`
	BBANExample          string `csv:"bban_example"`
	BBANFormatSWIFT      string `csv:"bban_format_swift"`
	BBANFormatRegex      string `csv:"bban_format_regex"`
	BBANLength           string `csv:"bban_length"`
	IBANExample          string `csv:"iban_example"`
	IBANFormatSWIFT      string `csv:"iban_format_swift"`
	IBANFormatRegex      string `csv:"iban_format_regex"`
	IBANLength           string `csv:"iban_length"`
	BankStart            string `csv:"bban_bankid_start_offset"`
	BankStop             string `csv:"bban_bankid_stop_offset"`
	BranchStart          string `csv:"bban_branchid_start_offset"`
	BranchStop           string `csv:"bban_branchid_stop_offset"`
	RegistryEdition      string `csv:"registry_edition"`
	SEPA                 string `csv:"country_sepa"`
	SWIFTOfficial        string `csv:"country_swift_official"`
	NationalChecksumFrom string `csv:"bban_checksum_start_offset"`
	NationalChecksumTo   string `csv:"bban_checksum_stop_offset"`
	IANA                 string `csv:"country_iana"`
	ISO3166              string `csv:"country_iso3166"`
	ParentRegistrar      string `csv:"parent_registrar"`
	Currency             string `csv:"currency_iso4217"`
	CentralBankURL       string `csv:"central_bank_url"`
	CentralBankName      string `csv:"central_bank_name"`
	Membership           string `csv:"membership"`
}

var codePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// Load decodes and validates a pipe-delimited registry. source names the
// input in errors. Any malformed record fails the whole load.
func Load(r io.Reader, source string) (*Registry, error) {
	reader := csv.NewReader(r)
	reader.Comma = '|'
	reader.FieldsPerRecord = 27

	var rows []record
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, &ibanerror.DataIntegrityError{Source: source, Reason: "cannot decode registry", Err: err}
	}
	if len(rows) == 0 {
		return nil, &ibanerror.DataIntegrityError{Source: source, Reason: "registry contains no countries"}
	}

	reg := &Registry{
		source:    source,
		countries: make(map[string]CountryFormat, len(rows)),
		codes:     make([]string, 0, len(rows)),
	}
	for _, row := range rows {
		format, err := row.toCountryFormat()
		if err != nil {
			return nil, &ibanerror.DataIntegrityError{Source: source, Record: row.Country, Reason: err.Error()}
		}
		if _, dup := reg.countries[format.Code]; dup {
			return nil, &ibanerror.DataIntegrityError{Source: source, Record: format.Code, Reason: "duplicate country code"}
		}
		reg.countries[format.Code] = format
		reg.codes = append(reg.codes, format.Code)
	}
	sort.Strings(reg.codes)
	return reg, nil
}

// LoadFile loads a registry from the file at path.
func LoadFile(path string) (*Registry, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, &ibanerror.DataIntegrityError{Source: path, Reason: "cannot open registry", Err: err}
	}
	defer func() {
		_ = file.Close()
	}()
	return Load(file, path)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the embedded registry. It is parsed on first use; the
// result, including any error, is shared by every caller.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = Load(bytes.NewReader(embeddedRegistry), EmbeddedSource)
	})
	return defaultRegistry, defaultErr
}

// Source names where the registry was loaded from.
func (r *Registry) Source() string { return r.source }

// Lookup returns the format of a country. The code is matched case-insensitively.
func (r *Registry) Lookup(code string) (CountryFormat, bool) {
	format, ok := r.countries[strings.ToUpper(strings.TrimSpace(code))]
	return format, ok
}

// Get is like Lookup but reports an unknown country as a *ibanerror.NotFoundError.
func (r *Registry) Get(code string) (CountryFormat, error) {
	format, ok := r.Lookup(code)
	if !ok {
		return CountryFormat{}, &ibanerror.NotFoundError{Country: strings.ToUpper(code)}
	}
	return format, nil
}

// Countries returns every registered country code in sorted order.
func (r *Registry) Countries() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// Len returns the number of registered countries.
func (r *Registry) Len() int { return len(r.codes) }

func (row record) toCountryFormat() (CountryFormat, error) {
	code := strings.TrimSpace(row.Country)
	if !codePattern.MatchString(code) {
		return CountryFormat{}, fmt.Errorf("invalid country code %q", row.Country)
	}

	ibanLength, err := parseLength("iban_length", row.IBANLength)
	if err != nil {
		return CountryFormat{}, err
	}
	bbanLength, err := parseLength("bban_length", row.BBANLength)
	if err != nil {
		return CountryFormat{}, err
	}
	if ibanLength != bbanLength+4 {
		return CountryFormat{}, fmt.Errorf("iban_length %d does not equal 4 + bban_length %d", ibanLength, bbanLength)
	}

	ibanPattern, err := compileAnchored("iban_format_regex", row.IBANFormatRegex)
	if err != nil {
		return CountryFormat{}, err
	}
	bbanPattern, err := compileAnchored("bban_format_regex", row.BBANFormatRegex)
	if err != nil {
		return CountryFormat{}, err
	}

	format := CountryFormat{
		Code:              code,
		Name:              row.CountryName,
		DomesticExample:   row.DomesticExample,
		BBANExample:       row.BBANExample,
		BBANFormatSWIFT:   row.BBANFormatSWIFT,
		BBANLength:        bbanLength,
		IBANExample:       row.IBANExample,
		IBANFormatSWIFT:   row.IBANFormatSWIFT,
		IBANLength:        ibanLength,
		RegistryEdition:   row.RegistryEdition,
		SEPA:              row.SEPA == "1",
		SWIFTOfficial:     row.SWIFTOfficial == "1",
		IANA:              row.IANA,
		ISO3166:           row.ISO3166,
		ParentRegistrar:   row.ParentRegistrar,
		Currency:          row.Currency,
		CentralBankName:   row.CentralBankName,
		Membership:        row.Membership,
		ibanPattern:       ibanPattern,
		bbanPattern:       bbanPattern,
		ibanPatternSource: row.IBANFormatRegex,
		bbanPatternSource: row.BBANFormatRegex,
	}
	if host := strings.TrimSpace(row.CentralBankURL); host != "" {
		format.CentralBankURL = "https://" + host + "/"
	}

	switch format.Membership {
	case MembershipEU, MembershipEFTA, MembershipOther, MembershipNone:
	default:
		return CountryFormat{}, fmt.Errorf("unknown membership %q", format.Membership)
	}

	if format.Bank, err = parseOffsets("bankid", row.BankStart, row.BankStop, bbanLength); err != nil {
		return CountryFormat{}, err
	}
	if format.Branch, err = parseOffsets("branchid", row.BranchStart, row.BranchStop, bbanLength); err != nil {
		return CountryFormat{}, err
	}
	if format.NationalChecksum, err = parseOffsets("checksum", row.NationalChecksumFrom, row.NationalChecksumTo, bbanLength); err != nil {
		return CountryFormat{}, err
	}
	return format, nil
}

func parseLength(column, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q", column, value)
	}
	return n, nil
}

func compileAnchored(column, pattern string) (*regexp.Regexp, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("empty %s", column)
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", column, err)
	}
	return re, nil
}

// parseOffsets reads a start/stop pair. Both empty means the field is absent;
// exactly one empty is an integrity failure.
func parseOffsets(field, start, stop string, bbanLength int) (Offsets, error) {
	start, stop = strings.TrimSpace(start), strings.TrimSpace(stop)
	if start == "" && stop == "" {
		return Offsets{}, nil
	}
	if start == "" || stop == "" {
		return Offsets{}, fmt.Errorf("incomplete %s offsets (%q, %q)", field, start, stop)
	}
	from, err := strconv.Atoi(start)
	if err != nil {
		return Offsets{}, fmt.Errorf("invalid %s start offset %q", field, start)
	}
	to, err := strconv.Atoi(stop)
	if err != nil {
		return Offsets{}, fmt.Errorf("invalid %s stop offset %q", field, stop)
	}
	if from < 0 || to < from || to >= bbanLength {
		return Offsets{}, fmt.Errorf("%s offsets (%d, %d) outside BBAN of length %d", field, from, to, bbanLength)
	}
	return Offsets{Start: from, Stop: to, Present: true}, nil
}
