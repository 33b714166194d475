package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitelicense/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatText),
		)
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=hello")
	})

	t.Run("includes static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("svc", "test")),
		)
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts customer id from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(logger.CustomerIDExtractor, nil),
		)
		ctx := logger.WithCustomerID(context.Background(), "42")
		log.InfoContext(ctx, "context msg")
		assert.Equal(t, "42", decode(t, buf)["customer_id"])
	})

	t.Run("extracts step from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(logger.StepExtractor),
		)
		log.InfoContext(logger.WithStep(context.Background(), 3), "step msg")
		assert.Equal(t, float64(3), decode(t, buf)["step"])
	})

	t.Run("skips extractor without value", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(logger.CustomerIDExtractor),
		)
		log.InfoContext(context.Background(), "no customer")
		assert.NotContains(t, decode(t, buf), "customer_id")
	})
}

func TestLevels(t *testing.T) {
	t.Run("level sets minimum level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("parse level", func(t *testing.T) {
		lvl, err := logger.ParseLevel(" DEBUG ")
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, lvl)

		_, err = logger.ParseLevel("loud")
		assert.Error(t, err)
	})
}

func TestEnvironmentPresets(t *testing.T) {
	t.Run("development writes debug text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithDevelopment("svc"),
			logger.WithOutput(buf),
		)
		log.Debug("msg")
		output := buf.String()
		assert.Contains(t, output, "DEBUG")
		assert.Contains(t, output, "service=svc")
		assert.Contains(t, output, "env=development")
	})

	t.Run("production writes json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment("prod", "svc"),
			logger.WithOutput(buf),
		)
		log.Debug("dropped")
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "svc", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("staging writes json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment("Staging", "svc"),
			logger.WithOutput(buf),
		)
		log.Info("msg")
		assert.Equal(t, "staging", decode(t, buf)["env"])
	})

	t.Run("empty service leaves defaults", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithDevelopment(""),
			logger.WithOutput(buf),
		)
		log.Info("msg")
		assert.NotContains(t, decode(t, buf), "service")
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestNop(t *testing.T) {
	log := logger.Nop()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
