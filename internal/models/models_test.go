package models

import (
	"testing"
	"time"
)

func TestParseMood(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mood
		wantErr bool
	}{
		{"excellent", "excellent", MoodExcellent, false},
		{"good", "good", MoodGood, false},
		{"okay", "okay", MoodOkay, false},
		{"low", "low", MoodLow, false},
		{"unknown value", "meh", "", true},
		{"empty", "", "", true},
		{"case sensitive", "Good", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMood(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMood(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMood(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoutineEntryValidate(t *testing.T) {
	valid := RoutineEntry{
		UserID:          DefaultUserID,
		Date:            "2025-06-01",
		SleepHours:      7.5,
		WaterGlasses:    8,
		ExerciseMinutes: 30,
		Mood:            MoodGood,
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on valid entry returned %v", err)
	}

	noDate := valid
	noDate.Date = ""
	if err := noDate.Validate(); err == nil {
		t.Error("Validate() accepted entry without date")
	}

	badMood := valid
	badMood.Mood = "fantastic"
	if err := badMood.Validate(); err == nil {
		t.Error("Validate() accepted entry with unknown mood")
	}
}

func TestHistoryPrepend(t *testing.T) {
	h := History{
		{ID: "2", Message: "second"},
		{ID: "1", Message: "first"},
	}

	h2 := h.Prepend(ChatEntry{ID: "3", Message: "third"})

	if len(h2) != 3 {
		t.Fatalf("len = %d, want 3", len(h2))
	}
	if h2[0].ID != "3" || h2[1].ID != "2" || h2[2].ID != "1" {
		t.Errorf("unexpected order: %v, %v, %v", h2[0].ID, h2[1].ID, h2[2].ID)
	}
	// Original is untouched
	if len(h) != 2 || h[0].ID != "2" {
		t.Errorf("Prepend mutated the original history: %+v", h)
	}
}

func TestHistoryChronological(t *testing.T) {
	h := History{
		{ID: "3"},
		{ID: "2"},
		{ID: "1"},
	}

	chrono := h.Chronological()
	if len(chrono) != 3 {
		t.Fatalf("len = %d, want 3", len(chrono))
	}
	for i, want := range []string{"1", "2", "3"} {
		if chrono[i].ID != want {
			t.Errorf("chrono[%d].ID = %q, want %q", i, chrono[i].ID, want)
		}
	}

	if got := History(nil).Chronological(); len(got) != 0 {
		t.Errorf("Chronological() on empty history = %v, want empty", got)
	}
}

func TestWeatherSummary(t *testing.T) {
	w := WeatherSnapshot{
		Temperature: 24.5,
		FeelsLike:   26.0,
		Humidity:    60,
		Condition:   "light rain",
		Location:    "Delhi",
	}

	want := "24.5°C, light rain in Delhi"
	if got := w.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestChatEntryFields(t *testing.T) {
	ts := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	e := ChatEntry{ID: "abc", Message: "hi", Response: "hello", Timestamp: ts}

	if e.Message != "hi" || e.Response != "hello" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if !e.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", e.Timestamp, ts)
	}
}
