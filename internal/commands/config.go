package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dincharya-ai/cli/internal/config"
	"github.com/dincharya-ai/cli/internal/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		path, _ := config.GetConfigPath()
		fmt.Printf("# %s\n", path)
		fmt.Printf("base_url           %s\n", cfg.BaseURL)
		fmt.Printf("user_id            %s\n", cfg.UserID)
		fmt.Printf("location           %g,%g\n", cfg.Location.Lat, cfg.Location.Lon)
		fmt.Printf("history_limit      %d\n", cfg.HistoryLimit)
		fmt.Printf("markdown_style     %s\n", cfg.MarkdownStyle)
		fmt.Printf("verbose            %t\n", cfg.Verbose)
		fmt.Printf("copy_to_clipboard  %t\n", cfg.CopyToClipboard)
		fmt.Printf("speech_command     %s\n", cfg.SpeechCommand)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and write it back to the config file.

Keys:
  base_url           Backend base URL
  user_id            User id sent to the backend
  location           Latitude and longitude, e.g. "28.6139,77.2090"
  history_limit      Chat exchanges loaded on startup
  markdown_style     Glamour style for responses (dark, light, ...)
  verbose            true or false
  copy_to_clipboard  true or false
  speech_command     External transcriber command for voice input`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		if err := applyConfigValue(&cfg, args[0], args[1]); err != nil {
			return err
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		fmt.Printf("✓ %s updated\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

// applyConfigValue sets one config field from its string form.
func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "base_url":
		if value == "" {
			return fmt.Errorf("base_url cannot be empty")
		}
		cfg.BaseURL = value

	case "user_id":
		if value == "" {
			return fmt.Errorf("user_id cannot be empty")
		}
		cfg.UserID = value

	case "location":
		loc, err := parseLocation(value)
		if err != nil {
			return err
		}
		cfg.Location = loc

	case "history_limit":
		limit, err := strconv.Atoi(value)
		if err != nil || limit <= 0 {
			return fmt.Errorf("history_limit must be a positive number")
		}
		cfg.HistoryLimit = limit

	case "markdown_style":
		cfg.MarkdownStyle = value

	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false")
		}
		cfg.Verbose = b

	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copy_to_clipboard must be true or false")
		}
		cfg.CopyToClipboard = b

	case "speech_command":
		cfg.SpeechCommand = value

	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	return nil
}

// parseLocation parses "lat,lon" into a Location.
func parseLocation(value string) (models.Location, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return models.Location{}, fmt.Errorf("location must be \"lat,lon\"")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("invalid latitude %q", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("invalid longitude %q", parts[1])
	}

	return models.Location{Lat: lat, Lon: lon}, nil
}
