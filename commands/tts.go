package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/symfony-cli/console"

	"github.com/dlukic/govox/config"
	"github.com/dlukic/govox/speech"
	"github.com/dlukic/govox/speech/eleven"
	"github.com/dlukic/govox/speech/googlecloud"
)

var TTSCommand = &console.Command{
	Name:  "tts",
	Usage: "Convert text to speech",
	Flags: []console.Flag{
		&console.StringFlag{
			Name:  "text",
			Usage: "Text to convert to speech",
		},
		&console.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Path to write the audio file to (default from config)",
		},
		&console.StringFlag{
			Name:  "lang",
			Usage: "Language code for synthesis (default from config)",
		},
		&console.StringFlag{
			Name:  "voice",
			Usage: "Provider voice name or voice ID (default from config)",
		},
	},
	Action: runTTS,
}

type synthesizer interface {
	speech.Synthesizer
	Close() error
}

// Seam for the tests, like newRecognizer.
var newSynthesizer = func(ctx context.Context, cfg *config.Config) (synthesizer, error) {
	switch cfg.TTS.Provider {
	case "google":
		return googlecloud.NewTTS(ctx)
	case "elevenlabs":
		return eleven.NewTTS(ctx, cfg.TTS.AuthKey)
	default:
		return nil, fmt.Errorf("unknown tts provider %q", cfg.TTS.Provider)
	}
}

// ttsInput carries the flag values into the conversion.
type ttsInput struct {
	ConfigPath string
	Text       string
	Language   string
	Voice      string
	Output     string
}

func runTTS(c *console.Context) error {
	if c.String("text") == "" {
		return console.Exit("Error: --text is required", 1)
	}
	return convertTextToSpeech(ttsInput{
		ConfigPath: c.String("config"),
		Text:       c.String("text"),
		Language:   c.String("lang"),
		Voice:      c.String("voice"),
		Output:     c.String("output"),
	}, c.App.Writer)
}

// convertTextToSpeech synthesizes the text and writes the audio bytes to
// the resolved output path.
func convertTextToSpeech(in ttsInput, out io.Writer) error {
	cfg, logger, closer, err := setup(in.ConfigPath)
	if err != nil {
		return console.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	defer closer.Close()

	output, err := resolveOutput(in.Output, cfg.TTS.OutputFile)
	if err != nil {
		return exitConversion(logger, err)
	}

	ctx := context.Background()
	synth, err := newSynthesizer(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Str("provider", cfg.TTS.Provider).Msg("failed to create synthesizer")
		return console.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	defer synth.Close()

	req := synthesisRequest(cfg, in.Text, in.Language, in.Voice)
	logger.Debug().
		Str("provider", cfg.TTS.Provider).
		Str("language", req.Language).
		Int("chars", len(req.Text)).
		Msg("synthesizing speech")

	audio, err := synth.Synthesize(ctx, req)
	if err != nil {
		return exitConversion(logger, err)
	}

	if err := writeAudio(output, audio); err != nil {
		return exitConversion(logger, err)
	}

	event := logger.Info().Str("path", output).Int("bytes", len(audio))
	if strings.EqualFold(filepath.Ext(output), ".mp3") {
		if duration, err := speech.Duration(output); err == nil {
			event = event.Dur("duration", duration.Round(time.Millisecond))
		}
	}
	event.Msg("speech saved")

	fmt.Fprintf(out, "Speech saved to: <info>%s</>\n", output)
	return nil
}

// synthesisRequest applies the flag-over-config precedence for the
// per-request synthesis settings.
func synthesisRequest(cfg *config.Config, text, lang, voice string) speech.SynthesisRequest {
	if lang == "" {
		lang = cfg.TTS.Language
	}
	if voice == "" {
		voice = cfg.TTS.Voice
	}
	return speech.SynthesisRequest{
		Text:     text,
		Language: lang,
		Voice:    voice,
		Model:    cfg.TTS.Model,
		Speed:    cfg.TTS.Speed,
	}
}

func writeAudio(path string, audio []byte) error {
	err := os.WriteFile(path, audio, 0644)
	if os.IsPermission(err) {
		return &speech.Error{Kind: speech.KindPermission, Op: "write " + path, Err: err}
	} else if err != nil {
		return &speech.Error{Op: "write " + path, Err: err}
	}
	return nil
}
