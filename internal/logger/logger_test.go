package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "json", &buf)

	log.Info().Str("domain", "example.com").Msg("test message")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "test message", entry["message"])
	assert.Equal(t, "example.com", entry["domain"])
	assert.Contains(t, entry, "time")
}

func TestNew_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", FormatConsole, &buf)

	log.Warn().Str("domain", "example.com").Msg("test message")

	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "test message")
	assert.Contains(t, out, "domain=example.com")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestNew_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		logLevel  string
		shouldLog bool
	}{
		{"warn logger skips info", "warn", "info", false},
		{"warn logger logs warn", "warn", "warn", true},
		{"info logger skips debug", "info", "debug", false},
		{"debug logger logs debug", "debug", "debug", true},
		{"invalid level defaults to info", "loud", "info", true},
		{"empty level defaults to info", "", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, "json", &buf)

			switch tt.logLevel {
			case "debug":
				log.Debug().Msg("test")
			case "info":
				log.Info().Msg("test")
			case "warn":
				log.Warn().Msg("test")
			}

			assert.Equal(t, tt.shouldLog, buf.Len() > 0, buf.String())
		})
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New("info", "json", &buf))

	log := FromContext(ctx)
	log.Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
}

func TestFromContext_Missing(t *testing.T) {
	log := FromContext(context.Background())
	// a disabled logger, nothing to assert but that it does not panic
	log.Error().Msg("dropped")
}

func TestNewRunID(t *testing.T) {
	id := NewRunID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewRunID())
}
