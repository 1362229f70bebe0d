package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textcanon/pkg/logger"
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

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
		)
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=hello")
	})

	t.Run("json formatter overrides text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(slog.LevelWarn),
		)
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("svc", "test")),
		)
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts context value", func(t *testing.T) {
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("run_id", key{}),
		)
		ctx := context.WithValue(context.Background(), key{}, "abc")
		log.InfoContext(ctx, "msg")
		assert.Equal(t, "abc", decode(t, buf)["run_id"])
	})

	t.Run("missing context value is skipped", func(t *testing.T) {
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("run_id", key{}),
			logger.WithContextExtractors(nil),
		)
		log.InfoContext(context.Background(), "msg")
		_, ok := decode(t, buf)["run_id"]
		assert.False(t, ok)
	})

	t.Run("extractors survive With", func(t *testing.T) {
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("run_id", key{}),
		).With(logger.Component("csv"))
		ctx := context.WithValue(context.Background(), key{}, "xyz")
		log.InfoContext(ctx, "msg")
		entry := decode(t, buf)
		assert.Equal(t, "xyz", entry["run_id"])
		assert.Equal(t, "csv", entry["component"])
	})
}

func TestWithFormat_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat("xml"))
	})
	assert.NotPanics(t, func() {
		logger.New(logger.WithFormat(logger.FormatText), logger.WithOutput(&bytes.Buffer{}))
	})
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		wantEnv   string
		debugSeen bool
		json      bool
	}{
		{name: "production", env: "production", wantEnv: logger.EnvProduction, json: true},
		{name: "prod alias", env: "prod", wantEnv: logger.EnvProduction, json: true},
		{name: "staging", env: "stage", wantEnv: logger.EnvStaging, json: true},
		{name: "development", env: "development", wantEnv: logger.EnvDevelopment, debugSeen: true},
		{name: "unknown falls back to development", env: "qa", wantEnv: logger.EnvDevelopment, debugSeen: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(
				logger.WithOutput(buf),
				logger.WithEnvironment(tt.env, "textcanon"),
			)
			log.Debug("debug")
			assert.Equal(t, tt.debugSeen, buf.Len() > 0)

			buf.Reset()
			log.Info("info")
			if tt.json {
				entry := decode(t, buf)
				assert.Equal(t, tt.wantEnv, entry["env"])
				assert.Equal(t, "textcanon", entry["service"])
				return
			}
			assert.Contains(t, buf.String(), "env="+tt.wantEnv)
			assert.Contains(t, buf.String(), "service=textcanon")
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("loud"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
