package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depsort/logger"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logger.Level{
		"debug":   logger.Debug,
		"INFO":    logger.Info,
		"warn":    logger.Warn,
		"Warning": logger.Warn,
		"error":   logger.Error,
	}
	for in, want := range cases {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logger.ParseLevel("trace2")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestParseFormat(t *testing.T) {
	f, err := logger.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	_, err = logger.ParseFormat("xml")
	assert.Error(t, err)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "debug", logger.Debug.String())
	assert.Equal(t, "error", logger.Error.String())
	assert.Equal(t, "unknown", logger.Level(3).String())
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(logger.Config{Level: logger.Warn, Format: logger.FormatJSON, Destination: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "device", "sda1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "sda1", rec["device"])
}

func TestNew_ConsoleWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(logger.Config{Level: logger.Info, Format: logger.FormatConsole, Destination: &buf})
	require.NoError(t, err)

	l.Info("planned storage actions", "count", 3)
	assert.Contains(t, buf.String(), "planned storage actions")
}

func TestNew_Invalid(t *testing.T) {
	_, err := logger.New(logger.Config{Level: logger.Level(99), Format: logger.FormatJSON})
	assert.ErrorContains(t, err, "unsupported log level")

	_, err = logger.New(logger.Config{Level: logger.Info, Format: "xml"})
	assert.ErrorContains(t, err, "unsupported log format")
}

func TestNew_NoneDiscards(t *testing.T) {
	l, err := logger.New(logger.Config{Level: logger.Info, Format: logger.FormatNone})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(logger.Config{Level: logger.Debug, Format: logger.FormatJSON, Destination: &buf})
	require.NoError(t, err)

	ctx := logger.WithContext(context.Background(), l)
	assert.Same(t, l, logger.From(ctx))

	// Missing logger falls back to a discarding one.
	assert.NotNil(t, logger.From(context.Background()))
	assert.NotSame(t, l, logger.From(context.Background()))
}

func TestDefault(t *testing.T) {
	orig := logger.Default()
	t.Cleanup(func() { logger.SetDefault(orig) })

	require.NotNil(t, orig)
	l, err := logger.New(logger.Config{Level: logger.Info, Format: logger.FormatNone})
	require.NoError(t, err)
	logger.SetDefault(l)
	assert.Same(t, l, logger.Default())
}
