package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	logger.Warn("careful", "k", 1)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "careful", line["msg"])

	buf.Reset()
	newLogger("bogus", "text", &buf).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
