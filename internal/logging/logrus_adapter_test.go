package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(level logrus.Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(level)
	logrusLogger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(logrusLogger), &buf
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
		expectJSON  bool
	}{
		{name: "debug text", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info json", level: "info", format: "json", expectLevel: logrus.InfoLevel, expectJSON: true},
		{name: "upper case level", level: " WARN ", format: "JSON", expectLevel: logrus.WarnLevel, expectJSON: true},
		{name: "unknown level falls back to info", level: "chatty", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok)
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			_, isJSON := adapter.logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.expectJSON, isJSON)
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	existing := logrus.New()
	adapter, ok := NewLogrusAdapterFromLogger(existing).(*LogrusAdapter)
	require.True(t, ok)
	assert.Same(t, existing, adapter.logger)

	adapter, ok = NewLogrusAdapterFromLogger(nil).(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func TestNewDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.WithField(FieldCountry, "GB").Error("dropped")
	})
}

func TestLogrusAdapter_Levels(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.InfoLevel)

	logger.Debug("hidden debug")
	logger.Info("checked", Country("GB"))
	logger.Warn("odd input", Field{Key: FieldReason, Value: "too short"})
	logger.Error("failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden debug")
	assert.Contains(t, out, "checked")
	assert.Contains(t, out, "country=GB")
	assert.Contains(t, out, "too short")
	assert.Contains(t, out, "failed")
}

func TestLogrusAdapter_ChainedFields(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.DebugLevel)

	logger.
		WithField(FieldOperation, "suggest").
		WithFields(Field{Key: FieldCandidates, Value: 2}).
		WithError(errors.New("table missing")).
		Error("suggestion failed")

	out := buf.String()
	assert.Contains(t, out, "operation=suggest")
	assert.Contains(t, out, "candidates=2")
	assert.Contains(t, out, "table missing")
}

func TestIBANFieldIsObfuscated(t *testing.T) {
	field := IBAN("GB29 NWBK 6016 1331 9268 19")
	assert.Equal(t, FieldIBAN, field.Key)
	assert.Equal(t, "GB** **** **** **** **68 19", field.Value)

	logger, buf := newBufferedLogger(logrus.InfoLevel)
	logger.Info("verified", field)
	assert.NotContains(t, buf.String(), "NWBK60161331")
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{
		{Key: FieldCountry, Value: "BE"},
		{Key: FieldCount, Value: 42},
	})
	assert.Len(t, fields, 2)
	assert.Equal(t, "BE", fields[FieldCountry])
	assert.Equal(t, 42, fields[FieldCount])

	assert.Empty(t, convertFields(nil))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
