package commands

import (
	"github.com/dincharya-ai/cli/internal/api"
	"github.com/dincharya-ai/cli/internal/config"
	"github.com/dincharya-ai/cli/internal/speech"
)

// newClient builds the API client from the effective configuration.
func newClient(cfg config.Config) (api.ClientInterface, error) {
	return api.NewClient(
		api.WithBaseURL(cfg.BaseURL),
		api.WithUserID(cfg.UserID),
		api.WithLocation(cfg.Location),
	)
}

// clientFactory builds the backend client for every command. Tests swap it
// for a mock.
var clientFactory = newClient

// newRecognizer builds the voice recognizer from the configured transcriber
// command. A nil recognizer means voice input is off.
func newRecognizer(cfg config.Config) speech.Recognizer {
	if cfg.SpeechCommand == "" {
		return nil
	}
	return speech.NewCommandRecognizer(cfg.SpeechCommand)
}
