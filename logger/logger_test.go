package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := NewForTests()
		ctx := ContextWithLogger(context.Background(), expected)

		actual := FromContext(ctx)

		require.NotNil(t, actual)
		assert.Equal(t, expected, actual)
	})

	t.Run("Should fall back to the default logger", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		l.Info("default logger works")
	})

	t.Run("Should fall back when the context holds a nil logger", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ctxKey{}, Logger(nil))
		require.NotNil(t, FromContext(ctx))
	})
}

func TestLoggerLevels(t *testing.T) {
	t.Run("Should respect log level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: WarnLevel, Output: &buf, TimeFormat: "15:04:05"})

		l.Debug("debug message")
		l.Info("info message")
		l.Warn("warn message")
		l.Error("error message")

		out := buf.String()
		assert.NotContains(t, out, "debug message")
		assert.NotContains(t, out, "info message")
		assert.Contains(t, out, "warn message")
		assert.Contains(t, out, "error message")
	})

	t.Run("Should write nothing when disabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: DisabledLevel, Output: &buf})
		l.Error("error message")
		assert.Empty(t, buf.String())
	})

	t.Run("Should carry fields added with With", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true})
		l.With("request_id", "abc").Info("handled")
		assert.Contains(t, buf.String(), `"request_id":"abc"`)
	})
}

func TestParseLevel(t *testing.T) {
	t.Run("Should map known names and default to info", func(t *testing.T) {
		assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
		assert.Equal(t, WarnLevel, ParseLevel("warning"))
		assert.Equal(t, ErrorLevel, ParseLevel("error"))
		assert.Equal(t, DisabledLevel, ParseLevel("off"))
		assert.Equal(t, InfoLevel, ParseLevel("verbose"))
	})
}
