package speech

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/asticode/go-astisub"
)

// WriteTranscript writes a transcript to path, as SRT when the path ends
// in .srt and as plain text otherwise. The file is overwritten.
func WriteTranscript(path string, transcript *Transcript) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".srt") {
		err = writeSRT(path, transcript)
	} else {
		err = os.WriteFile(path, []byte(transcript.Text+"\n"), 0644)
	}

	if os.IsPermission(err) {
		return &Error{Kind: KindPermission, Op: "write " + path, Err: err}
	} else if err != nil {
		return &Error{Op: "write " + path, Err: err}
	}
	return nil
}

// writeSRT renders each recognizer segment as one subtitle item. A
// segment starts where the previous one ended; the first starts at zero.
func writeSRT(path string, transcript *Transcript) error {
	subs := astisub.NewSubtitles()

	var startAt time.Duration
	for _, segment := range transcript.Segments {
		text := strings.TrimSpace(segment.Text)
		if text != "" {
			subs.Items = append(subs.Items, &astisub.Item{
				Index:   len(subs.Items) + 1,
				StartAt: startAt,
				EndAt:   segment.EndAt,
				Lines: []astisub.Line{
					{Items: []astisub.LineItem{{Text: text}}},
				},
			})
		}
		startAt = segment.EndAt
	}

	if len(subs.Items) == 0 {
		return fmt.Errorf("transcript has no timed segments, use a .txt output instead")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return subs.WriteToSRT(f)
}
