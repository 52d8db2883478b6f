package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_FieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Warn(ctx, "wrn", "borrower_id", "b-1")
	log.Error(ctx, "err", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "dbg", lines[0]["message"])
	assert.EqualValues(t, 1, lines[0]["a"])

	assert.Equal(t, "warn", lines[1]["level"])
	assert.Equal(t, "b-1", lines[1]["borrower_id"])

	assert.Equal(t, "dangling", lines[2]["!BADKEY"])
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf)).With("session", "s-1")
	log.Info(context.Background(), "hello", "k", "v")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "s-1", lines[0]["session"])
	assert.Equal(t, "v", lines[0]["k"])
}

func TestNew_SelectsBackendAndLevel(t *testing.T) {
	ctx := context.Background()

	t.Run("zerolog", func(t *testing.T) {
		var buf bytes.Buffer
		log := New("zerolog", "warn", &buf)
		_, ok := log.(*ZerologLogger)
		require.True(t, ok)

		log.Info(ctx, "skipped")
		log.Warn(ctx, "kept")
		assert.NotContains(t, buf.String(), "skipped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("slog default", func(t *testing.T) {
		var buf bytes.Buffer
		log := New("", "", &buf)
		_, ok := log.(*SlogLogger)
		require.True(t, ok)

		log.Debug(ctx, "skipped")
		log.Info(ctx, "kept")
		assert.NotContains(t, buf.String(), "skipped")
		assert.Contains(t, buf.String(), `"msg":"kept"`)
	})
}
