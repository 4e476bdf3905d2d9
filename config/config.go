// Package config holds the run settings for govox. Every key is optional;
// a missing file means "use all defaults".
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLogFile       = "logs/converter.log"
	DefaultLogLevel      = "info"
	DefaultTTSOutputFile = "output/speech_output.mp3"
	DefaultSTTOutputFile = "output/text_output.txt"
	DefaultLanguage      = "en"
	DefaultTTSProvider   = "google"
)

type Config struct {
	Logging Logging `yaml:"logging"`
	TTS     TTS     `yaml:"tts"`
	STT     STT     `yaml:"stt"`
}

type Logging struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

type TTS struct {
	OutputFile string  `yaml:"output_file"`
	Provider   string  `yaml:"provider"`
	Language   string  `yaml:"language"`
	Voice      string  `yaml:"voice"`
	Model      string  `yaml:"model"`
	AuthKey    string  `yaml:"auth_key"`
	Speed      float32 `yaml:"speed"`
}

type STT struct {
	OutputFile string `yaml:"output_file"`
	Language   string `yaml:"language"`
}

// Default returns a config with every fallback applied.
func Default() *Config {
	config := &Config{}
	config.normalize()
	return config
}

// Load reads the config file at filename. A missing file yields the
// defaults; a malformed file is an error.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	} else if err != nil {
		return nil, err
	}

	var config Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		// an empty file has no settings, which is not an error
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		var typeError *yaml.TypeError
		if errors.As(err, &typeError) {
			msg := ""
			for _, field := range typeError.Errors {
				msg += fmt.Sprintf("  - <fg=red>%s</>\n", field)
			}
			return nil, fmt.Errorf("error parsing config file <info>%s</>:\n%s", filename, msg)
		}
		return nil, err
	}

	config.normalize()
	return &config, nil
}

// normalize fills empty keys with their fallback values.
func (c *Config) normalize() {
	if c.Logging.File == "" {
		c.Logging.File = DefaultLogFile
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.TTS.OutputFile == "" {
		c.TTS.OutputFile = DefaultTTSOutputFile
	}
	if c.TTS.Provider == "" {
		c.TTS.Provider = DefaultTTSProvider
	}
	if c.TTS.Language == "" {
		c.TTS.Language = DefaultLanguage
	}
	if c.TTS.Speed == 0 {
		c.TTS.Speed = 1.0
	}
	if c.STT.OutputFile == "" {
		c.STT.OutputFile = DefaultSTTOutputFile
	}
	if c.STT.Language == "" {
		c.STT.Language = DefaultLanguage
	}
}
