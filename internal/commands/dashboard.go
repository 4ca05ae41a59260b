package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dincharya-ai/cli/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open the full-screen dashboard with chat, routine logging, weather
and news tabs.

Type 'exit', 'quit', or press Ctrl+C to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func runDashboard() error {
	cfg := loadConfig()

	client, err := clientFactory(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	// Verify the backend is reachable before taking over the screen
	spin := newSpinner("Connecting to Din Charya")
	spin.start()
	if err := client.Ping(); err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Backend unreachable"))
		return fmt.Errorf("backend unreachable: %w", err)
	}
	spin.stopWithSuccess("Connected")

	return tui.RunDashboard(client, newRecognizer(cfg), tui.Options{
		HistoryLimit:  cfg.HistoryLimit,
		MarkdownStyle: cfg.MarkdownStyle,
	})
}
