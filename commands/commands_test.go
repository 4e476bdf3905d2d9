package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlukic/govox/config"
	"github.com/dlukic/govox/speech"
)

// writeTestConfig points every configurable path at a temp directory so
// the conversions never touch the working directory.
func writeTestConfig(t *testing.T) (configPath, outDir string) {
	t.Helper()

	dir := t.TempDir()
	outDir = filepath.Join(dir, "output")
	content := "logging:\n" +
		"  file: " + filepath.Join(dir, "logs", "converter.log") + "\n" +
		"tts:\n" +
		"  output_file: " + filepath.Join(outDir, "speech_output.mp3") + "\n" +
		"stt:\n" +
		"  output_file: " + filepath.Join(outDir, "text_output.txt") + "\n"

	configPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath, outDir
}

func TestAll(t *testing.T) {
	cmds := All()

	require.Len(t, cmds, 2)
	assert.Equal(t, "tts", cmds[0].Name)
	assert.Equal(t, "stt", cmds[1].Name)
}

func TestResolveOutput_FlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag", "audio.mp3")

	path, err := resolveOutput(flagPath, "output/speech_output.mp3")
	require.NoError(t, err)

	assert.Equal(t, flagPath, path)
	assert.DirExists(t, filepath.Join(dir, "flag"))
}

func TestResolveOutput_ConfigDefault(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "output", "text_output.txt")

	path, err := resolveOutput("", configPath)
	require.NoError(t, err)

	assert.Equal(t, configPath, path)
	assert.DirExists(t, filepath.Join(dir, "output"))
}

func TestConversionMessage(t *testing.T) {
	tests := []struct {
		kind speech.Kind
		msg  string
	}{
		{speech.KindNotFound, "Audio file not found"},
		{speech.KindPermission, "Permission denied while saving file"},
		{speech.KindUnintelligible, "Speech was unintelligible"},
		{speech.KindRequest, "Provider request failed"},
		{speech.KindInternal, "Unexpected error"},
	}
	for _, test := range tests {
		err := &speech.Error{Kind: test.kind, Op: "op", Err: errors.New("boom")}
		assert.Equal(t, test.msg, conversionMessage(err))
	}

	assert.Equal(t, "Unexpected error", conversionMessage(errors.New("plain")))
}

func TestSynthesisRequest_Precedence(t *testing.T) {
	cfg := config.Default()
	cfg.TTS.Voice = "config-voice"
	cfg.TTS.Speed = 1.1

	req := synthesisRequest(cfg, "hello", "", "")
	assert.Equal(t, "en", req.Language)
	assert.Equal(t, "config-voice", req.Voice)
	assert.Equal(t, float32(1.1), req.Speed)

	req = synthesisRequest(cfg, "hello", "de", "flag-voice")
	assert.Equal(t, "de", req.Language)
	assert.Equal(t, "flag-voice", req.Voice)
}

func TestNewSynthesizer_ProviderSelection(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	cfg.TTS.Provider = "elevenlabs"
	_, err := newSynthesizer(ctx, cfg)
	assert.Error(t, err) // no auth key

	cfg.TTS.AuthKey = "key"
	synth, err := newSynthesizer(ctx, cfg)
	require.NoError(t, err)
	assert.NotNil(t, synth)

	cfg.TTS.Provider = "espeak"
	_, err = newSynthesizer(ctx, cfg)
	assert.Error(t, err)
}

func TestWriteAudio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio.mp3")

	require.NoError(t, writeAudio(path, []byte{1, 2, 3}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}
