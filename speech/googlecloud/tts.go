// Package googlecloud backs the speech interfaces with the Google Cloud
// Text-to-Speech and Speech-to-Text APIs. Both clients authenticate via
// Application Default Credentials.
package googlecloud

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"github.com/dlukic/govox/speech"
)

// TTS synthesizes speech with the Google Cloud Text-to-Speech API.
type TTS struct {
	client *texttospeech.Client
}

func NewTTS(ctx context.Context) (*TTS, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	return &TTS{client: client}, nil
}

func (t *TTS) Close() error {
	return t.client.Close()
}

func (t *TTS) Synthesize(ctx context.Context, req speech.SynthesisRequest) ([]byte, error) {
	resp, err := t.client.SynthesizeSpeech(ctx, synthesizeSpeechRequest(req))
	if err != nil {
		return nil, &speech.Error{Kind: speech.KindRequest, Op: "google synthesize", Err: err}
	}
	if len(resp.AudioContent) == 0 {
		return nil, &speech.Error{Kind: speech.KindRequest, Op: "google synthesize", Err: fmt.Errorf("empty audio content")}
	}
	return resp.AudioContent, nil
}

func synthesizeSpeechRequest(req speech.SynthesisRequest) *texttospeechpb.SynthesizeSpeechRequest {
	out := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: speech.WidenLanguage(req.Language),
			Name:         req.Voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}
	if req.Speed > 0 {
		out.AudioConfig.SpeakingRate = float64(req.Speed)
	}
	return out
}
