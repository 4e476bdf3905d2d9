// Package commands defines the govox console commands and the shared
// plumbing between them: config loading, logger setup, output path
// resolution and the mapping from conversion failures to exit messages.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/symfony-cli/console"

	"github.com/dlukic/govox/config"
	"github.com/dlukic/govox/logging"
	"github.com/dlukic/govox/speech"
)

func All() []*console.Command {
	return []*console.Command{TTSCommand, STTCommand}
}

// setup loads the config file and builds the logger from it. The
// returned closer releases the log file.
func setup(configPath string) (*config.Config, zerolog.Logger, io.Closer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	return cfg, logger, closer, nil
}

// resolveOutput picks the flag value over the config default and creates
// the parent directory.
func resolveOutput(flagValue, configValue string) (string, error) {
	path := flagValue
	if path == "" {
		path = configValue
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			if os.IsPermission(err) {
				return "", &speech.Error{Kind: speech.KindPermission, Op: "create " + dir, Err: err}
			}
			return "", &speech.Error{Op: "create " + dir, Err: err}
		}
	}
	return path, nil
}

// conversionMessage is the category-specific message for a conversion
// failure, used both for the log line and the exit message.
func conversionMessage(err error) string {
	switch speech.KindOf(err) {
	case speech.KindNotFound:
		return "Audio file not found"
	case speech.KindPermission:
		return "Permission denied while saving file"
	case speech.KindUnintelligible:
		return "Speech was unintelligible"
	case speech.KindRequest:
		return "Provider request failed"
	default:
		return "Unexpected error"
	}
}

// exitConversion logs a failed conversion and turns it into a non-zero
// process exit.
func exitConversion(logger zerolog.Logger, err error) error {
	msg := conversionMessage(err)
	logger.Error().Err(err).Str("kind", speech.KindOf(err).String()).Msg(msg)
	return console.Exit(fmt.Sprintf("%s: %v", msg, err), 1)
}
