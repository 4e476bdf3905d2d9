package speech

import (
	"context"
	"strings"
	"time"
)

// Encoding identifies the audio container/codec of a transcription input.
type Encoding string

const (
	EncodingLinear16 Encoding = "linear16"
	EncodingMP3      Encoding = "mp3"
	EncodingOggOpus  Encoding = "ogg_opus"
	EncodingFLAC     Encoding = "flac"
)

// SynthesisRequest describes a single text-to-speech call.
type SynthesisRequest struct {
	Text     string
	Language string
	Voice    string
	Model    string
	Speed    float32
}

// Synthesizer abstracts a text-to-speech provider.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error)
}

// TranscriptionRequest describes a single speech-to-text call.
type TranscriptionRequest struct {
	Audio      []byte
	Encoding   Encoding
	SampleRate int
	Channels   int
	Language   string
}

// Recognizer abstracts a speech-to-text provider.
type Recognizer interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (*Transcript, error)
}

// Transcript is the recognizer output. Segments keep the provider's
// per-result timing so the transcript can be rendered as subtitles.
type Transcript struct {
	Text     string
	Segments []Segment
}

type Segment struct {
	Text  string
	EndAt time.Duration
}

// WidenLanguage maps a bare two-letter code to the BCP-47 regional code
// the cloud APIs expect. Regional codes pass through unchanged.
func WidenLanguage(code string) string {
	if strings.Contains(code, "-") {
		return code
	}
	regions := map[string]string{
		"en": "en-US",
		"de": "de-DE",
		"fr": "fr-FR",
		"es": "es-ES",
		"it": "it-IT",
		"pt": "pt-BR",
		"nl": "nl-NL",
		"hr": "hr-HR",
		"ja": "ja-JP",
		"ko": "ko-KR",
		"zh": "zh-CN",
	}
	if region, ok := regions[strings.ToLower(code)]; ok {
		return region
	}
	return code
}
