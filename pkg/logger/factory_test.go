package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongotypes/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default with static attrs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("service", "mongotypes")))
		log.Info("hello")

		rec := decode(t, &buf)
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "mongotypes", rec["service"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("context value extraction", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithContextValue("request_id", ctxKey{}))
		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "hello")
		assert.Equal(t, "req-1", decode(t, &buf)["request_id"])
	})

	t.Run("nil extractors are ignored", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithContextExtractors(nil))
		assert.NotPanics(t, func() { log.InfoContext(context.Background(), "hello") })
	})
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       logger.Config
		wantDebug bool
		wantJSON  bool
	}{
		{name: "debug json", cfg: logger.Config{Level: "debug", Format: "json"}, wantDebug: true, wantJSON: true},
		{name: "upper case", cfg: logger.Config{Level: "DEBUG", Format: "JSON"}, wantDebug: true, wantJSON: true},
		{name: "info text", cfg: logger.Config{Level: "info", Format: "text"}},
		{name: "unknown falls back", cfg: logger.Config{Level: "loud", Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := logger.New(logger.WithOutput(&buf), logger.WithConfig(tt.cfg))
			log.Debug("debug")
			log.Info("info")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug"))
			assert.Equal(t, tt.wantJSON, strings.HasPrefix(out, "{"))
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	log.Info("checked",
		logger.ObjectID("507f1f77bcf86cd799439011"),
		logger.Model("person"),
		logger.Rule("objectid"),
		logger.Error(errors.New("boom")),
		logger.Errors(nil, errors.New("second")),
		logger.Group("ctx", slog.String("k", "v")),
	)

	rec := decode(t, &buf)
	assert.Equal(t, "507f1f77bcf86cd799439011", rec["object_id"])
	assert.Equal(t, "person", rec["model"])
	assert.Equal(t, "objectid", rec["rule"])
	assert.Equal(t, "boom", rec["error"])
	assert.Equal(t, map[string]any{"1": "second"}, rec["errors"])
	assert.Equal(t, map[string]any{"k": "v"}, rec["ctx"])
}

func TestAttrsEmpty(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.ObjectID("").Equal(slog.Attr{}))
	assert.True(t, logger.Model("").Equal(slog.Attr{}))
	assert.True(t, logger.Rule("").Equal(slog.Attr{}))
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}
