package mistranscription

import (
	"strings"

	"fjacquet/iban-check/internal/iban"
	"fjacquet/iban-check/internal/ibanformat"
	"fjacquet/iban-check/internal/logging"
)

// InsaneLengthDiagnostic is the single suggestion returned for inputs whose
// machine format is shorter than MinLength or longer than MaxLength.
const InsaneLengthDiagnostic = "(supplied iban length insane)"

// Liberal bounds on the input length. The per-country length is not used
// because the country code itself may be mistranscribed.
const (
	MinLength = 5
	MaxLength = 34
)

// Engine searches for valid IBANs reachable from an input through plausible
// transcription errors.
type Engine struct {
	validator      *iban.Validator
	table          *Table
	nationalFilter bool
	logger         logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithNationalChecksumFilter drops candidates whose national checksum is
// known to be wrong. Candidates from countries without a scheme are kept.
func WithNationalChecksumFilter() Option {
	return func(e *Engine) {
		e.nationalFilter = true
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine validating candidates with validator.
func NewEngine(validator *iban.Validator, table *Table, opts ...Option) *Engine {
	e := &Engine{
		validator: validator,
		table:     table,
		logger:    logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Suggest returns the valid IBANs, in machine format and discovery order,
// that differ from input by one substituted position or by one character
// replaced at every occurrence. It never fails: an input of implausible
// length yields the single InsaneLengthDiagnostic entry.
func (e *Engine) Suggest(input string) []string {
	machine := ibanformat.ToMachine(input)
	if len(machine) < MinLength || len(machine) > MaxLength {
		return []string{InsaneLengthDiagnostic}
	}

	s := &suggestions{seen: make(map[string]struct{}), list: []string{}}

	// Single position substitutions.
	for i := 0; i < len(machine); i++ {
		for _, origin := range e.table.Confusions(machine[i]) {
			if !allowedAt(i, origin) {
				continue
			}
			candidate := machine[:i] + string(origin) + machine[i+1:]
			if e.accept(candidate) {
				s.add(candidate)
			}
		}
	}

	// Systematic substitutions of a repeated character.
	for _, c := range repeatedChars(machine) {
		for _, origin := range e.table.Confusions(c) {
			candidate := strings.ReplaceAll(machine, string(c), string(origin))
			if e.accept(candidate) {
				s.add(candidate)
			}
		}
	}

	e.logger.Debug("mistranscription search finished",
		logging.IBAN(machine),
		logging.Field{Key: logging.FieldCandidates, Value: len(s.list)})
	return s.list
}

func (e *Engine) accept(candidate string) bool {
	if !e.validator.Verify(candidate, true) {
		return false
	}
	return !e.nationalFilter || e.validator.VerifyNationalChecksum(candidate) != iban.Invalid
}

// allowedAt restricts the country code to letters and the check digits to
// digits.
func allowedAt(pos int, c byte) bool {
	isDigit := c >= '0' && c <= '9'
	switch {
	case pos < 2:
		return !isDigit
	case pos < 4:
		return isDigit
	default:
		return true
	}
}

// repeatedChars returns the characters occurring more than once in s, in
// order of first occurrence.
func repeatedChars(s string) []byte {
	var counts [256]int
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	var out []byte
	for i := 0; i < len(s); i++ {
		if counts[s[i]] > 1 {
			out = append(out, s[i])
			counts[s[i]] = 0
		}
	}
	return out
}

type suggestions struct {
	seen map[string]struct{}
	list []string
}

func (s *suggestions) add(candidate string) {
	if _, dup := s.seen[candidate]; dup {
		return
	}
	s.seen[candidate] = struct{}{}
	s.list = append(s.list, candidate)
}
