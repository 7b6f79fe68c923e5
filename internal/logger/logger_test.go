package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Format: "json"}.New(&buf, true)

	l.Info().Str("source", "a.shp").Msg("Converted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "a.shp", entry["source"])
	assert.Equal(t, "Converted", entry["message"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Format: "console"}.New(&buf, true)

	l.Info().Str("dest", "b.geojson").Msg("Converted a.shp -> b.geojson")

	out := buf.String()
	assert.Contains(t, out, "Converted a.shp -> b.geojson")
	assert.Contains(t, out, "dest=b.geojson")
	assert.NotContains(t, out, "\x1b[", "colors must be off")
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Logger{Level: tt.in}.level(), tt.in)
	}
}
