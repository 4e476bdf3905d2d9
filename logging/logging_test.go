package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlukic/govox/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "converter.log")

	logger, closer, err := New(config.Logging{File: path, Level: "debug"})
	require.NoError(t, err)

	logger.Info().Str("path", "out.mp3").Msg("speech saved")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "speech saved")
	assert.Contains(t, string(data), `"level":"info"`)
}

func TestNew_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "converter.log")

	for _, msg := range []string{"first run", "second run"} {
		logger, closer, err := New(config.Logging{File: path, Level: "info"})
		require.NoError(t, err)
		logger.Info().Msg(msg)
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, Level("debug"))
	assert.Equal(t, zerolog.WarnLevel, Level("WARN"))
	assert.Equal(t, zerolog.InfoLevel, Level(""))
	assert.Equal(t, zerolog.InfoLevel, Level("verbose"))
}
