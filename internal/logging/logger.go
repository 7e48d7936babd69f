// Package logging provides a logging abstraction layer that decouples the
// IBAN engines from a specific logging framework.
package logging

import "fjacquet/iban-check/internal/ibanformat"

// Logger defines the interface for structured logging throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// Fatal logs a fatal-level message and exits the program
	Fatal(msg string, fields ...Field)

	// Fatalf logs a fatal-level message with formatting and exits the program
	Fatalf(msg string, args ...interface{})
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// IBAN returns a field carrying the obfuscated presentation of iban.
// Raw account numbers never reach the log output.
func IBAN(iban string) Field {
	return Field{Key: FieldIBAN, Value: ibanformat.ToObfuscated(iban)}
}

// Country returns a country code field.
func Country(code string) Field {
	return Field{Key: FieldCountry, Value: code}
}
