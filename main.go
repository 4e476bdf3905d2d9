package main

import (
	"os"

	"github.com/dlukic/govox/commands"
	"github.com/symfony-cli/console"
)

var (
	// version is overridden at linking time
	version = "dev"
	// buildDate is overridden at linking time
	buildDate string
)

func main() {
	app := &console.Application{
		Name:        "govox",
		Usage:       "Convert text to speech and speech to text",
		Description: "Delegates to a text-to-speech provider (Google Cloud TTS or ElevenLabs) and a speech recognition provider (Google Cloud Speech-to-Text), writing the results to files.",
		Version:     version,
		BuildDate:   buildDate,
		Channel:     "stable",
		Flags: []console.Flag{
			&console.StringFlag{
				Name:         "config",
				Aliases:      []string{"c"},
				DefaultValue: "config.yaml",
				Usage:        "Path to config YAML file",
			},
		},
		Commands: commands.All(),
	}

	app.Run(os.Args)
}
