package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show the current weather",
	Long:  `Fetch and print the current weather for the configured location.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWeather()
	},
}

func runWeather() error {
	cfg := loadConfig()

	client, err := clientFactory(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	spin := newSpinner("Fetching weather")
	spin.start()
	snapshot, err := client.FetchWeather()
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Weather unavailable"))
		return fmt.Errorf("weather unavailable: %w", err)
	}
	spin.stopWithSuccess(snapshot.Summary())

	labelStyle := lipgloss.NewStyle().Foreground(colorTextDim)
	valueStyle := lipgloss.NewStyle().Foreground(colorText)

	rows := []struct {
		label string
		value string
	}{
		{"Location", snapshot.Location},
		{"Temperature", fmt.Sprintf("%.1f°C", snapshot.Temperature)},
		{"Feels like", fmt.Sprintf("%.1f°C", snapshot.FeelsLike)},
		{"Humidity", fmt.Sprintf("%d%%", snapshot.Humidity)},
		{"Condition", snapshot.Condition},
	}

	for _, row := range rows {
		fmt.Printf("%s  %s\n",
			labelStyle.Render(fmt.Sprintf("%-12s", row.label)),
			valueStyle.Render(row.value),
		)
	}

	return nil
}
