// Package logging builds the process logger: structured lines appended to
// the configured log file, human-readable lines on stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dlukic/govox/config"
)

// New opens the log file (creating parent directories) and returns a
// logger writing to both the file and the console. The caller closes the
// returned file handle when done.
func New(cfg config.Logging) (zerolog.Logger, io.Closer, error) {
	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(zerolog.MultiLevelWriter(console, f)).
		Level(Level(cfg.Level)).
		With().Timestamp().Logger()

	return logger, f, nil
}

// Level parses a config log level, falling back to info on anything it
// does not recognize.
func Level(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
