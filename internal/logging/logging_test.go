package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zerolog.TraceLevel, ParseLevel("trace"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestSetup_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup("warn", &buf, false)

	Logger.Info().Msg("hidden")
	For("combat").Warn().Int("damage", 15).Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "combat", entry["component"])
	assert.Equal(t, float64(15), entry["damage"])
}

func TestFor_ChildKeepsLevelAndComponent(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf, false)

	log := For("term")
	log.Debug().Msg("hidden")
	log.Info().Str("mission", "orc_camp").Msg("mission not started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "term", entry["component"])
	assert.Equal(t, "orc_camp", entry["mission"])
	assert.Equal(t, "info", entry["level"])
}
