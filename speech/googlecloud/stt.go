package googlecloud

import (
	"context"
	"fmt"
	"strings"

	speechapi "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"

	"github.com/dlukic/govox/speech"
)

// STT transcribes audio with the synchronous Google Cloud Speech-to-Text
// Recognize call. Audio longer than a minute needs the long-running API
// and is out of scope here.
type STT struct {
	client *speechapi.Client
}

func NewSTT(ctx context.Context) (*STT, error) {
	client, err := speechapi.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return &STT{client: client}, nil
}

func (s *STT) Close() error {
	return s.client.Close()
}

func (s *STT) Transcribe(ctx context.Context, req speech.TranscriptionRequest) (*speech.Transcript, error) {
	resp, err := s.client.Recognize(ctx, recognizeRequest(req))
	if err != nil {
		return nil, &speech.Error{Kind: speech.KindRequest, Op: "google recognize", Err: err}
	}
	return transcriptFromResponse(resp)
}

func recognizeRequest(req speech.TranscriptionRequest) *speechpb.RecognizeRequest {
	config := &speechpb.RecognitionConfig{
		Encoding:     recognitionEncoding(req.Encoding),
		LanguageCode: speech.WidenLanguage(req.Language),
	}
	if req.SampleRate > 0 {
		config.SampleRateHertz = int32(req.SampleRate)
	}
	if req.Channels > 1 {
		// Without EnableSeparateRecognitionPerChannel the service
		// transcribes only the first channel. That is what we want for a
		// single transcript; the per-channel mode would duplicate the
		// text for ordinary stereo recordings.
		config.AudioChannelCount = int32(req.Channels)
	}
	return &speechpb.RecognizeRequest{
		Config: config,
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: req.Audio},
		},
	}
}

func recognitionEncoding(encoding speech.Encoding) speechpb.RecognitionConfig_AudioEncoding {
	switch encoding {
	case speech.EncodingLinear16:
		return speechpb.RecognitionConfig_LINEAR16
	case speech.EncodingMP3:
		return speechpb.RecognitionConfig_MP3
	case speech.EncodingOggOpus:
		return speechpb.RecognitionConfig_OGG_OPUS
	case speech.EncodingFLAC:
		return speechpb.RecognitionConfig_FLAC
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED
	}
}

// transcriptFromResponse joins the top alternative of every result. A
// response with no usable alternative means the service could not make
// out any speech.
func transcriptFromResponse(resp *speechpb.RecognizeResponse) (*speech.Transcript, error) {
	transcript := &speech.Transcript{}

	var parts []string
	for _, result := range resp.GetResults() {
		alternatives := result.GetAlternatives()
		if len(alternatives) == 0 {
			continue
		}
		text := strings.TrimSpace(alternatives[0].GetTranscript())
		if text == "" {
			continue
		}
		parts = append(parts, text)
		transcript.Segments = append(transcript.Segments, speech.Segment{
			Text:  text,
			EndAt: result.GetResultEndTime().AsDuration(),
		})
	}

	if len(parts) == 0 {
		return nil, &speech.Error{
			Kind: speech.KindUnintelligible,
			Op:   "google recognize",
			Err:  fmt.Errorf("no transcript in response"),
		}
	}

	transcript.Text = strings.Join(parts, " ")
	return transcript, nil
}
