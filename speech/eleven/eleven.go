// Package eleven backs the Synthesizer interface with the ElevenLabs TTS
// API. Language is controlled by the model, not a language code, so the
// request language only matters for multilingual models.
package eleven

import (
	"context"
	"fmt"
	"time"

	"github.com/haguro/elevenlabs-go"

	"github.com/dlukic/govox/speech"
)

const requestTimeout = 30 * time.Second

// DefaultModelID handles every language the CLI exposes.
const DefaultModelID = "eleven_multilingual_v2"

type TTS struct {
	client *elevenlabs.Client
}

func NewTTS(ctx context.Context, authKey string) (*TTS, error) {
	if authKey == "" {
		return nil, fmt.Errorf("elevenlabs auth key is required")
	}
	return &TTS{client: elevenlabs.NewClient(ctx, authKey, requestTimeout)}, nil
}

func (t *TTS) Close() error { return nil }

func (t *TTS) Synthesize(ctx context.Context, req speech.SynthesisRequest) ([]byte, error) {
	if req.Voice == "" {
		return nil, &speech.Error{
			Kind: speech.KindRequest,
			Op:   "elevenlabs synthesize",
			Err:  fmt.Errorf("a voice ID is required"),
		}
	}

	ttsReq := textToSpeechRequest(req)
	audio, err := t.client.TextToSpeech(req.Voice, ttsReq)
	if err != nil {
		return nil, &speech.Error{Kind: speech.KindRequest, Op: "elevenlabs synthesize", Err: err}
	}
	return audio, nil
}

func textToSpeechRequest(req speech.SynthesisRequest) elevenlabs.TextToSpeechRequest {
	model := req.Model
	if model == "" {
		model = DefaultModelID
	}
	speed := req.Speed
	if speed == 0 {
		speed = 1.0
	}
	return elevenlabs.TextToSpeechRequest{
		Text:    req.Text,
		ModelID: model,
		VoiceSettings: &elevenlabs.VoiceSettings{
			SpeakerBoost: true,
			Speed:        speed,
		},
	}
}
