package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show today's headlines",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNews()
	},
}

func runNews() error {
	cfg := loadConfig()

	client, err := clientFactory(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	spin := newSpinner("Fetching news")
	spin.start()
	items, err := client.FetchNews()
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "News unavailable"))
		return fmt.Errorf("news unavailable: %w", err)
	}
	spin.stopWithSuccess(fmt.Sprintf("%d headlines", len(items)))

	if len(items) == 0 {
		fmt.Println("No news right now.")
		return nil
	}

	titleStyle := lipgloss.NewStyle().Foreground(colorText)
	metaStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	for _, item := range items {
		fmt.Println(titleStyle.Render("• " + item.Title))
		meta := item.Source
		if item.Time != "" {
			meta += "  " + item.Time
		}
		fmt.Println(metaStyle.Render("  " + meta))
	}

	return nil
}
