package googlecloud

import (
	"testing"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/stretchr/testify/assert"

	"github.com/dlukic/govox/speech"
)

func TestSynthesizeSpeechRequest(t *testing.T) {
	req := synthesizeSpeechRequest(speech.SynthesisRequest{
		Text:     "hello there",
		Language: "en",
		Voice:    "en-US-Wavenet-F",
		Speed:    1.2,
	})

	assert.Equal(t, "hello there", req.Input.GetText())
	assert.Equal(t, "en-US", req.Voice.LanguageCode)
	assert.Equal(t, "en-US-Wavenet-F", req.Voice.Name)
	assert.Equal(t, texttospeechpb.AudioEncoding_MP3, req.AudioConfig.AudioEncoding)
	assert.InDelta(t, 1.2, req.AudioConfig.SpeakingRate, 0.001)
}

func TestSynthesizeSpeechRequest_Defaults(t *testing.T) {
	req := synthesizeSpeechRequest(speech.SynthesisRequest{
		Text:     "hello",
		Language: "de",
	})

	assert.Equal(t, "de-DE", req.Voice.LanguageCode)
	assert.Empty(t, req.Voice.Name)
	assert.Zero(t, req.AudioConfig.SpeakingRate)
}
