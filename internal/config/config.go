// Package config handles configuration for the dincharya client.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dincharya-ai/cli/internal/models"
)

// Config represents the user configuration
type Config struct {
	// BaseURL is the backend API root, without the /api path.
	BaseURL string `json:"base_url"`
	// UserID identifies the user to the backend. The backend falls back to
	// "default_user" when empty.
	UserID string `json:"user_id"`
	// Location is sent with chat requests so the assistant can consider
	// local weather.
	Location models.Location `json:"location"`
	// HistoryLimit caps how many chat exchanges are loaded on startup.
	HistoryLimit int `json:"history_limit"`
	// MarkdownStyle selects the glamour style used to render assistant
	// responses ("dark", "light", or a path to a JSON theme).
	MarkdownStyle string `json:"markdown_style"`
	// Verbose enables detailed logging output during operations and
	// mirrors the diagnostic log to stderr.
	Verbose bool `json:"verbose"`
	// CopyToClipboard copies one-shot query responses to the clipboard.
	CopyToClipboard bool `json:"copy_to_clipboard"`
	// SpeechCommand is the external transcriber run for voice input. It
	// must print the transcript to stdout. Voice input is unavailable when
	// empty.
	SpeechCommand string `json:"speech_command,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:       models.DefaultBaseURL,
		UserID:        models.DefaultUserID,
		Location:      models.DefaultLocation,
		HistoryLimit:  models.DefaultHistoryLimit,
		MarkdownStyle: "dark",
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".dincharya"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	// Re-fill fields an older config file may not carry
	if cfg.BaseURL == "" {
		cfg.BaseURL = models.DefaultBaseURL
	}
	if cfg.UserID == "" {
		cfg.UserID = models.DefaultUserID
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = models.DefaultHistoryLimit
	}
	if cfg.Location.Lat == 0 && cfg.Location.Lon == 0 {
		cfg.Location = models.DefaultLocation
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
