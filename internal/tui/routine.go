package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/dincharya-ai/cli/internal/models"
)

// routineFields holds the raw form input for one routine entry. Numeric
// fields stay strings until submit so the form can validate them in place.
type routineFields struct {
	Sleep    string
	Water    string
	Exercise string
	Mood     models.Mood
}

// newRoutineForm creates the daily routine form bound to the given fields.
func newRoutineForm(f *routineFields) *huh.Form {
	if f.Mood == "" {
		f.Mood = models.MoodGood
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sleep (hours)").
				Placeholder("7.5").
				Value(&f.Sleep).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("enter the hours slept, e.g. 7.5")
					}
					if v < 0 || v > 24 {
						return fmt.Errorf("sleep must be between 0 and 24 hours")
					}
					return nil
				}),
			huh.NewInput().
				Title("Water (glasses)").
				Placeholder("8").
				Value(&f.Water).
				Validate(func(s string) error {
					v, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("enter a whole number of glasses")
					}
					if v < 0 {
						return fmt.Errorf("glasses cannot be negative")
					}
					return nil
				}),
			huh.NewInput().
				Title("Exercise (minutes)").
				Placeholder("30").
				Value(&f.Exercise).
				Validate(func(s string) error {
					v, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("enter a whole number of minutes")
					}
					if v < 0 {
						return fmt.Errorf("minutes cannot be negative")
					}
					return nil
				}),
			huh.NewSelect[models.Mood]().
				Title("Mood").
				Options(
					huh.NewOption("Excellent", models.MoodExcellent),
					huh.NewOption("Good", models.MoodGood),
					huh.NewOption("Okay", models.MoodOkay),
					huh.NewOption("Low", models.MoodLow),
				).
				Value(&f.Mood),
		),
	).WithShowHelp(false)
}

// entry converts the validated form input into a routine entry dated today.
func (f *routineFields) entry(userID string) (models.RoutineEntry, error) {
	sleep, err := strconv.ParseFloat(strings.TrimSpace(f.Sleep), 64)
	if err != nil {
		return models.RoutineEntry{}, fmt.Errorf("invalid sleep hours: %w", err)
	}
	water, err := strconv.Atoi(strings.TrimSpace(f.Water))
	if err != nil {
		return models.RoutineEntry{}, fmt.Errorf("invalid water glasses: %w", err)
	}
	exercise, err := strconv.Atoi(strings.TrimSpace(f.Exercise))
	if err != nil {
		return models.RoutineEntry{}, fmt.Errorf("invalid exercise minutes: %w", err)
	}

	entry := models.RoutineEntry{
		UserID:          userID,
		Date:            time.Now().Format("2006-01-02"),
		SleepHours:      sleep,
		WaterGlasses:    water,
		ExerciseMinutes: exercise,
		Mood:            f.Mood,
	}

	return entry, entry.Validate()
}
