package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/symfony-cli/console"

	"github.com/dlukic/govox/speech"
	"github.com/dlukic/govox/speech/googlecloud"
)

type recognizer interface {
	speech.Recognizer
	Close() error
}

// Seams for the tests; the cloud client needs credentials the test
// environment does not have.
var (
	speechProbe     = speech.ProbeFile
	writeTranscript = speech.WriteTranscript
	newRecognizer   = func(ctx context.Context) (recognizer, error) {
		return googlecloud.NewSTT(ctx)
	}
)

var STTCommand = &console.Command{
	Name:  "stt",
	Usage: "Convert speech to text",
	Flags: []console.Flag{
		&console.StringFlag{
			Name:  "audio",
			Usage: "Path to the audio file to transcribe (.wav, .mp3, .ogg, .flac)",
		},
		&console.StringFlag{
			Name:  "lang",
			Usage: "Language code for recognition (default from config)",
		},
		&console.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Path to write the transcript to (default from config, .srt for subtitles)",
		},
	},
	Action: runSTT,
}

// sttInput carries the flag values into the conversion.
type sttInput struct {
	ConfigPath string
	AudioPath  string
	Language   string
	Output     string
}

func runSTT(c *console.Context) error {
	if c.String("audio") == "" {
		return console.Exit("Error: --audio is required", 1)
	}
	return convertSpeechToText(sttInput{
		ConfigPath: c.String("config"),
		AudioPath:  c.String("audio"),
		Language:   c.String("lang"),
		Output:     c.String("output"),
	}, c.App.Writer)
}

// convertSpeechToText transcribes the audio file and writes the result.
// The output path is only resolved (and its directory created) once the
// provider has produced a transcript, so a failed recognition leaves no
// output file behind.
func convertSpeechToText(in sttInput, out io.Writer) error {
	cfg, logger, closer, err := setup(in.ConfigPath)
	if err != nil {
		return console.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	defer closer.Close()

	lang := in.Language
	if lang == "" {
		lang = cfg.STT.Language
	}

	req, err := speechProbe(in.AudioPath, lang)
	if err != nil {
		return exitConversion(logger, err)
	}
	logger.Debug().
		Str("audio", in.AudioPath).
		Str("encoding", string(req.Encoding)).
		Int("sample_rate", req.SampleRate).
		Str("language", req.Language).
		Msg("transcribing audio")

	ctx := context.Background()
	rec, err := newRecognizer(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create recognizer")
		return console.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	defer rec.Close()

	transcript, err := rec.Transcribe(ctx, req)
	if err != nil {
		return exitConversion(logger, err)
	}

	output, err := resolveOutput(in.Output, cfg.STT.OutputFile)
	if err != nil {
		return exitConversion(logger, err)
	}
	if err := writeTranscript(output, transcript); err != nil {
		return exitConversion(logger, err)
	}

	logger.Info().
		Str("path", output).
		Int("segments", len(transcript.Segments)).
		Int("chars", len(transcript.Text)).
		Msg("transcript saved")

	fmt.Fprintf(out, "Transcript saved to: <info>%s</>\n", output)
	return nil
}
