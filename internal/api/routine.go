package api

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"

	apierrors "github.com/dincharya-ai/cli/internal/errors"
	"github.com/dincharya-ai/cli/internal/models"
)

// SaveRoutine posts one routine entry and returns the stored record. The
// entry is validated first; nothing is sent when validation fails. The
// user id defaults to the client's when the entry leaves it empty.
func (c *Client) SaveRoutine(entry models.RoutineEntry) (*models.RoutineEntry, error) {
	if entry.UserID == "" {
		entry.UserID = c.userID
	}

	if err := entry.Validate(); err != nil {
		return nil, apierrors.NewValidationError("routine", err.Error())
	}

	body, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal routine entry: %w", err)
	}

	data, err := c.postJSON(models.PathRoutine, body)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, apierrors.NewParseError("routine response is not valid JSON", models.PathRoutine)
	}

	saved := parseRoutineEntry(gjson.ParseBytes(data))
	return &saved, nil
}

// FetchRoutineHistory returns the user's recent routine entries, newest
// first. limit <= 0 uses the backend's default page size.
func (c *Client) FetchRoutineHistory(limit int) ([]models.RoutineEntry, error) {
	path := models.PathRoutine + "/" + url.PathEscape(c.userID)
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	data, err := c.get(path)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, apierrors.NewParseError("routine history is not valid JSON", models.PathRoutine)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, apierrors.NewParseError("routine history is not a list", models.PathRoutine)
	}

	entries := []models.RoutineEntry{}
	root.ForEach(func(_, value gjson.Result) bool {
		entries = append(entries, parseRoutineEntry(value))
		return true
	})

	return entries, nil
}

func parseRoutineEntry(value gjson.Result) models.RoutineEntry {
	return models.RoutineEntry{
		UserID:          value.Get("user_id").String(),
		Date:            value.Get("date").String(),
		SleepHours:      value.Get("sleep_hours").Float(),
		WaterGlasses:    int(value.Get("water_glasses").Int()),
		ExerciseMinutes: int(value.Get("exercise_minutes").Int()),
		Mood:            models.Mood(value.Get("mood").String()),
	}
}
