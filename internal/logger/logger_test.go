package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	return entry
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("auditsync", path, "debug")
	require.NotNil(t, l)

	l.Debug().Msg("written")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	entry := decodeEntry(t, data)
	assert.Equal(t, "auditsync", entry["role"])
	assert.Equal(t, "written", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewClientLogger_WritesToFile")
}

func TestNewClientLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"warn", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"shouting", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewClientLogger("auditsync", "", tt.level)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestForCycle(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "auditsync").Logger()}

	cycle := parent.ForCycle("01HX3Z")
	require.NotSame(t, parent, cycle)

	cycle.Info().Msg("sync cycle started")
	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "auditsync", entry["role"])
	assert.Equal(t, "01HX3Z", entry["cycle_id"])

	buf.Reset()
	parent.Info().Msg("outside the cycle")
	assert.NotContains(t, decodeEntry(t, buf.Bytes()), "cycle_id")
}

func TestFromContext(t *testing.T) {
	t.Run("returns the cycle logger attached to ctx", func(t *testing.T) {
		var buf bytes.Buffer
		base := &Logger{zerolog.New(&buf)}
		ctx := base.ForCycle("01HX40").WithContext(context.Background())

		FromContext(ctx).Info().Msg("push institutions")

		assert.Equal(t, "01HX40", decodeEntry(t, buf.Bytes())["cycle_id"])
	})

	t.Run("never nil without an attached logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	t.Run("returns the request logger with its trace id", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "trace-42").Logger()
		req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
		req = req.WithContext(zl.WithContext(req.Context()))

		FromRequest(req).Info().Msg("status read")

		assert.Equal(t, "trace-42", decodeEntry(t, buf.Bytes())["trace_id"])
	})

	t.Run("never nil without an attached logger", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NotNil(t, FromRequest(req))
	})
}
