package speech

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// ProbeFile reads an audio file and derives the transcription parameters
// from its container. WAV and MP3 headers are decoded; OGG/Opus and FLAC
// are recognized by extension only.
func ProbeFile(path, language string) (TranscriptionRequest, error) {
	req := TranscriptionRequest{Language: language}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return req, &Error{Kind: KindNotFound, Op: "probe " + path, Err: err}
	} else if os.IsPermission(err) {
		return req, &Error{Kind: KindPermission, Op: "probe " + path, Err: err}
	} else if err != nil {
		return req, &Error{Op: "probe " + path, Err: err}
	}
	req.Audio = data

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		decoder := wav.NewDecoder(bytes.NewReader(data))
		decoder.ReadInfo()
		if decoder.Err() != nil || decoder.SampleRate == 0 {
			return req, &Error{Op: "probe " + path, Err: fmt.Errorf("not a valid WAV file")}
		}
		req.Encoding = EncodingLinear16
		req.SampleRate = int(decoder.SampleRate)
		req.Channels = int(decoder.NumChans)
	case ".mp3":
		decoder, err := mp3.NewDecoder(bytes.NewReader(data))
		if err != nil {
			return req, &Error{Op: "probe " + path, Err: err}
		}
		req.Encoding = EncodingMP3
		req.SampleRate = decoder.SampleRate()
		req.Channels = 2
	case ".ogg", ".opus":
		req.Encoding = EncodingOggOpus
		req.SampleRate = 48000
		req.Channels = 1
	case ".flac":
		req.Encoding = EncodingFLAC
	default:
		return req, &Error{Op: "probe " + path, Err: fmt.Errorf("unsupported audio format %q", filepath.Ext(path))}
	}

	return req, nil
}

// Duration reports how long an MP3 file plays. The decoder always
// produces 16-bit stereo frames, 4 bytes per frame.
func Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, err
	}

	seconds := float64(decoder.Length()) / (4 * float64(decoder.SampleRate()))
	return time.Duration(seconds * float64(time.Second)), nil
}
