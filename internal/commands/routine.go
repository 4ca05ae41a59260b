package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dincharya-ai/cli/internal/models"
)

var (
	sleepFlag    float64
	waterFlag    int
	exerciseFlag int
	moodFlag     string

	routineLimitFlag int
)

var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Log and review your daily routine",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare "routine" opens the log form
		return runRoutineLog()
	},
}

var routineLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log today's routine",
	Long: `Log today's sleep, water, exercise and mood.

With no flags an interactive form is shown. With flags the entry is
submitted directly:

  dincharya routine log --sleep 7.5 --water 8 --exercise 30 --mood good`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoutineLog()
	},
}

var routineHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent routine entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoutineHistory()
	},
}

func init() {
	routineLogCmd.Flags().Float64Var(&sleepFlag, "sleep", 0, "Hours slept")
	routineLogCmd.Flags().IntVar(&waterFlag, "water", 0, "Glasses of water")
	routineLogCmd.Flags().IntVar(&exerciseFlag, "exercise", 0, "Minutes of exercise")
	routineLogCmd.Flags().StringVar(&moodFlag, "mood", "", "Mood (excellent, good, okay, low)")

	routineHistoryCmd.Flags().IntVarP(&routineLimitFlag, "limit", "n", models.DefaultRoutineLimit, "Number of entries to show")

	routineCmd.AddCommand(routineLogCmd)
	routineCmd.AddCommand(routineHistoryCmd)
}

func runRoutineLog() error {
	cfg := loadConfig()

	client, err := clientFactory(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	// Flag mode requires --mood; anything less drops into the form
	var entry models.RoutineEntry
	if moodFlag != "" {
		entry, err = routineEntryFromFlags(client.UserID())
	} else {
		entry, err = routineEntryFromForm(client.UserID())
	}
	if err != nil {
		return err
	}

	spin := newSpinner("Saving routine")
	spin.start()
	saved, err := client.SaveRoutine(entry)
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Failed to save routine"))
		return fmt.Errorf("failed to save routine: %w", err)
	}
	spin.stopWithSuccess(fmt.Sprintf("Routine saved for %s", saved.Date))

	printRoutineEntry(*saved)
	return nil
}

// routineEntryFromFlags builds the entry directly from command flags.
func routineEntryFromFlags(userID string) (models.RoutineEntry, error) {
	mood, err := models.ParseMood(moodFlag)
	if err != nil {
		return models.RoutineEntry{}, err
	}

	entry := models.RoutineEntry{
		UserID:          userID,
		Date:            time.Now().Format("2006-01-02"),
		SleepHours:      sleepFlag,
		WaterGlasses:    waterFlag,
		ExerciseMinutes: exerciseFlag,
		Mood:            mood,
	}

	return entry, entry.Validate()
}

// routineEntryFromForm collects the entry through an interactive form.
func routineEntryFromForm(userID string) (models.RoutineEntry, error) {
	var (
		sleep    string
		water    string
		exercise string
		mood     = models.MoodGood
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sleep (hours)").
				Placeholder("7.5").
				Value(&sleep).
				Validate(validateSleepInput),
			huh.NewInput().
				Title("Water (glasses)").
				Placeholder("8").
				Value(&water).
				Validate(validateCountInput("glasses")),
			huh.NewInput().
				Title("Exercise (minutes)").
				Placeholder("30").
				Value(&exercise).
				Validate(validateCountInput("minutes")),
			huh.NewSelect[models.Mood]().
				Title("Mood").
				Options(
					huh.NewOption("Excellent", models.MoodExcellent),
					huh.NewOption("Good", models.MoodGood),
					huh.NewOption("Okay", models.MoodOkay),
					huh.NewOption("Low", models.MoodLow),
				).
				Value(&mood),
		),
	)

	if err := form.Run(); err != nil {
		return models.RoutineEntry{}, err
	}

	sleepHours, _ := strconv.ParseFloat(strings.TrimSpace(sleep), 64)
	waterGlasses, _ := strconv.Atoi(strings.TrimSpace(water))
	exerciseMinutes, _ := strconv.Atoi(strings.TrimSpace(exercise))

	entry := models.RoutineEntry{
		UserID:          userID,
		Date:            time.Now().Format("2006-01-02"),
		SleepHours:      sleepHours,
		WaterGlasses:    waterGlasses,
		ExerciseMinutes: exerciseMinutes,
		Mood:            mood,
	}

	return entry, entry.Validate()
}

// validateSleepInput checks the sleep hours form field.
func validateSleepInput(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter the hours slept, e.g. 7.5")
	}
	if v < 0 || v > 24 {
		return fmt.Errorf("sleep must be between 0 and 24 hours")
	}
	return nil
}

// validateCountInput checks a non-negative whole number form field.
func validateCountInput(unit string) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number of %s", unit)
		}
		if v < 0 {
			return fmt.Errorf("%s cannot be negative", unit)
		}
		return nil
	}
}

func runRoutineHistory() error {
	cfg := loadConfig()

	client, err := clientFactory(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	spin := newSpinner("Loading routine history")
	spin.start()
	entries, err := client.FetchRoutineHistory(routineLimitFlag)
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Routine history unavailable"))
		return fmt.Errorf("routine history unavailable: %w", err)
	}
	spin.stopWithSuccess(fmt.Sprintf("%d entries", len(entries)))

	if len(entries) == 0 {
		fmt.Println("No routine entries yet.")
		return nil
	}

	for _, entry := range entries {
		printRoutineEntry(entry)
	}

	return nil
}

// printRoutineEntry prints one routine entry as a single line.
func printRoutineEntry(entry models.RoutineEntry) {
	dateStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(colorText)

	fmt.Printf("%s  %s\n",
		dateStyle.Render(entry.Date),
		valueStyle.Render(fmt.Sprintf(
			"sleep %.1fh  water %d  exercise %dm  mood %s",
			entry.SleepHours, entry.WaterGlasses, entry.ExerciseMinutes, entry.Mood,
		)),
	)
}
