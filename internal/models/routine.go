package models

import "fmt"

// Mood is the self-reported mood attached to a routine entry.
type Mood string

// Moods accepted by the backend
const (
	MoodExcellent Mood = "excellent"
	MoodGood      Mood = "good"
	MoodOkay      Mood = "okay"
	MoodLow       Mood = "low"
)

// Moods returns all valid moods in display order.
func Moods() []Mood {
	return []Mood{MoodExcellent, MoodGood, MoodOkay, MoodLow}
}

// ParseMood converts a string into a Mood, rejecting unknown values.
func ParseMood(s string) (Mood, error) {
	switch Mood(s) {
	case MoodExcellent, MoodGood, MoodOkay, MoodLow:
		return Mood(s), nil
	}
	return "", fmt.Errorf("unknown mood %q (expected excellent, good, okay or low)", s)
}

// IsValid reports whether the mood is one of the accepted values.
func (m Mood) IsValid() bool {
	_, err := ParseMood(string(m))
	return err == nil
}

// RoutineEntry is one day of self-logged wellness metrics. It is built
// client-side from form input, posted once, and not retained locally.
type RoutineEntry struct {
	UserID          string  `json:"user_id"`
	Date            string  `json:"date"` // ISO date, yyyy-mm-dd
	SleepHours      float64 `json:"sleep_hours"`
	WaterGlasses    int     `json:"water_glasses"`
	ExerciseMinutes int     `json:"exercise_minutes"`
	Mood            Mood    `json:"mood"`
}

// Validate checks the fields required before submit. Value ranges are not
// checked beyond numeric parsing; the backend accepts whatever the user logs.
func (r RoutineEntry) Validate() error {
	if r.Date == "" {
		return fmt.Errorf("routine entry has no date")
	}
	if !r.Mood.IsValid() {
		return fmt.Errorf("routine entry has invalid mood %q", r.Mood)
	}
	return nil
}
