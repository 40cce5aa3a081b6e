package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/Xordas/ScreenX/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)})

	ctx := logging.AppendCtx(logging.PackageCtx("render"), slog.Int("frame", 3))
	logger.InfoContext(ctx, "Showing screen", "screen", "idle")

	out := buf.String()
	assert.Contains(t, out, `msg="Showing screen"`)
	assert.Contains(t, out, "screen=idle")
	assert.Contains(t, out, "package=render")
	assert.Contains(t, out, "frame=3")
}

func TestContextHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)}).With("mode", "demo")
	logger.InfoContext(logging.PackageCtx("web"), "Rendered preview")

	assert.Contains(t, buf.String(), "mode=demo")
	assert.Contains(t, buf.String(), "package=web")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := logging.ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.NewHandler(&buf, slog.LevelWarn))
	logger.Info("Hidden")
	logger.Warn("Visible")

	assert.NotContains(t, buf.String(), "Hidden")
	assert.Contains(t, buf.String(), "Visible")
}
