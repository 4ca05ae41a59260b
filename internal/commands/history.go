package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dincharya-ai/cli/internal/render"
)

var historyLimitFlag int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent chat exchanges",
	Long:  `Print the most recent chat exchanges, oldest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistory()
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 0, "Number of exchanges to show (default from config)")
}

func runHistory() error {
	cfg := loadConfig()

	limit := historyLimitFlag
	if limit <= 0 {
		limit = cfg.HistoryLimit
	}

	client, err := clientFactory(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	spin := newSpinner("Loading history")
	spin.start()
	history, err := client.FetchHistory(limit)
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "History unavailable"))
		return fmt.Errorf("history unavailable: %w", err)
	}
	spin.stopWithSuccess(fmt.Sprintf("%d exchanges", len(history)))

	if len(history) == 0 {
		fmt.Println("No conversations yet.")
		return nil
	}

	userStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#bb9af7")).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	contentWidth := getTerminalWidth() - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	for _, entry := range history.Chronological() {
		stamp := ""
		if !entry.Timestamp.IsZero() {
			stamp = entry.Timestamp.Local().Format("Jan 2 15:04")
		}
		fmt.Printf("%s %s\n", userStyle.Render("⬤ You"), timeStyle.Render(stamp))
		fmt.Println("  " + entry.Message)

		fmt.Println(assistantLabelStyle.Render("☀ Din Charya"))
		rendered, err := render.Markdown(entry.Response, render.Options{
			Width: contentWidth,
			Style: cfg.MarkdownStyle,
		})
		if err != nil {
			rendered = entry.Response
		}
		fmt.Println(strings.TrimRight(rendered, "\n"))
		fmt.Println()
	}

	return nil
}
