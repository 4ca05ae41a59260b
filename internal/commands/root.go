// Package commands provides CLI commands for the dincharya client.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dincharya-ai/cli/internal/config"
	"github.com/dincharya-ai/cli/internal/logger"
)

var (
	// Global flags
	baseURLFlag string
	userFlag    string
	verboseFlag bool
	outputFlag  string
	fileFlag    string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dincharya [prompt]",
	Short: "Personal daily-routine assistant",
	Long: `dincharya is a terminal client for the Din Charya assistant. It chats
about your day, logs your daily routine, and shows local weather and
news, all through the Din Charya backend API.

Examples:
  dincharya                             Open the dashboard
  dincharya "How did I sleep this week?"  Send a single question
  dincharya -f prompt.md                Read the question from a file
  cat prompt.md | dincharya             Read the question from stdin
  dincharya "plan my morning" -o plan.md  Save the response to a file
  dincharya routine log                 Log today's routine
  dincharya weather                     Show current weather`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("dincharya %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for stdin
		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0], !isStdoutTTY())
		}

		// No input on a terminal opens the dashboard
		if isStdoutTTY() {
			return runDashboard()
		}

		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User id sent to the backend (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose logging to stderr")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		initLogging()
	}

	// Add subcommands
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(weatherCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(routineCmd)
	rootCmd.AddCommand(configCmd)
}

// initLogging sets up the rotating diagnostic log. Logging is best effort;
// a failure here never blocks a command.
func initLogging() {
	configDir, err := config.EnsureConfigDir()
	if err != nil {
		return
	}
	_ = logger.Init(logger.Config{
		Verbose:   verboseFlag,
		ConfigDir: configDir,
	})
}

// loadConfig loads the user config and applies the global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
	}

	if baseURLFlag != "" {
		cfg.BaseURL = baseURLFlag
	}
	if userFlag != "" {
		cfg.UserID = userFlag
	}
	if verboseFlag {
		cfg.Verbose = true
	}

	return cfg
}
