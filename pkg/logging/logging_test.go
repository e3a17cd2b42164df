package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs points the global logger at a buffer for the duration of a test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})
	return &buf
}

func TestLoggerSilentBeforeSetup(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, log.Logger.GetLevel())
	assert.Equal(t, zerolog.Disabled, GetLogger("grid").GetLevel())
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestLogFilePathUsesStateHome(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	path, err := LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(stateHome, "markup", "markup.log"), path)
	assert.DirExists(t, filepath.Join(stateHome, "markup"))
}

func TestGetLoggerAddsComponent(t *testing.T) {
	buf := captureLogs(t)

	logger := GetLogger("grid")
	logger.Info().Msg("rendered")

	assert.Contains(t, buf.String(), `"component":"grid"`)
	assert.Contains(t, buf.String(), "rendered")
}

func TestLogCommand(t *testing.T) {
	buf := captureLogs(t)

	LogCommand("render", []string{"notes.txt", "--format=html"})

	output := buf.String()
	assert.Contains(t, output, "render")
	assert.Contains(t, output, "notes.txt")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	buf := captureLogs(t)

	done := LogOperationStart(log.Logger, "render")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"duration"`)
}
