package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json at info by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("hello")
		entry := decode(t, &buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format and level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithFormat(logger.FormatText),
			logger.WithLevel(slog.LevelDebug),
			logger.WithOutput(&buf),
		)
		log.Debug("rules loaded", logger.Count(3))
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "count=3")
	})

	t.Run("static attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, &buf)["svc"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.WithFormat("xml") })
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("production alias writes json at info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithEnvironment("prod", "fieldcheck"), logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("msg")
		entry := decode(t, &buf)
		assert.Equal(t, "fieldcheck", entry["service"])
		assert.Equal(t, "msg", entry["msg"])
	})

	t.Run("empty name is development", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithEnvironment("", "fieldcheck"), logger.WithOutput(&buf))
		log.Debug("msg")
		assert.Contains(t, buf.String(), "service=fieldcheck")
		assert.Contains(t, buf.String(), "level=DEBUG")
	})

	t.Run("unknown name uses the development preset", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithEnvironment("ci", ""), logger.WithOutput(&buf))
		log.Debug("msg")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.NotContains(t, buf.String(), "service=")
	})

	t.Run("later options override the preset", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithEnvironment("development", "fieldcheck"),
			logger.WithFormat(logger.FormatJSON),
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(&buf),
		)
		log.Info("hidden")
		assert.Empty(t, buf.String())
		log.Warn("shown")
		assert.Equal(t, "shown", decode(t, &buf)["msg"])
	})
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	type key struct{}

	t.Run("context value", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithContextValue("run_id", key{}))

		log.InfoContext(context.WithValue(context.Background(), key{}, "abc"), "msg")
		assert.Equal(t, "abc", decode(t, &buf)["run_id"])
	})

	t.Run("missing value adds nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithContextValue("run_id", key{}))

		log.InfoContext(context.Background(), "msg")
		assert.NotContains(t, decode(t, &buf), "run_id")
	})

	t.Run("survives With and WithGroup", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		extractor := func(ctx context.Context) (slog.Attr, bool) {
			return slog.String("id", "123"), true
		}
		log := logger.New(logger.WithOutput(&buf), logger.WithContextExtractors(nil, extractor))

		log.With(logger.Component("validate")).WithGroup("g").InfoContext(context.Background(), "msg")
		entry := decode(t, &buf)
		assert.Equal(t, "validate", entry["component"])
		assert.Equal(t, map[string]any{"id": "123"}, entry["g"])
	})

	t.Run("empty name or key", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, logger.ContextValue("", key{}))
		assert.Nil(t, logger.ContextValue("run_id", nil))
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logger.ParseLevel("loud")
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := logger.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	f, err = logger.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	_, err = logger.ParseFormat("xml")
	assert.ErrorIs(t, err, logger.ErrInvalidFormat)
}
