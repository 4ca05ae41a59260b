package api

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	apierrors "github.com/dincharya-ai/cli/internal/errors"
	"github.com/dincharya-ai/cli/internal/models"
)

// chatRequest is the POST /api/chat body
type chatRequest struct {
	Message  string          `json:"message"`
	UserID   string          `json:"user_id"`
	Location models.Location `json:"location"`
}

// SendMessage posts one chat message and returns the completed exchange.
// The message is trimmed first; an empty or whitespace-only message is
// rejected without issuing a request.
func (c *Client) SendMessage(message string) (*models.ChatEntry, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apierrors.NewValidationError("message", "cannot be empty")
	}

	body, err := json.Marshal(chatRequest{
		Message:  message,
		UserID:   c.userID,
		Location: c.location,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	data, err := c.postJSON(models.PathChat, body)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, apierrors.NewParseError("chat response is not valid JSON", models.PathChat)
	}

	entry := parseChatEntry(gjson.ParseBytes(data))
	if entry.Response == "" {
		return nil, apierrors.NewParseError("chat response has no assistant text", models.PathChat)
	}

	return &entry, nil
}

// FetchHistory returns the user's chat history, newest first. limit <= 0
// uses the backend's default page size.
func (c *Client) FetchHistory(limit int) (models.History, error) {
	path := models.PathChatHistory + "/" + url.PathEscape(c.userID)
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	data, err := c.get(path)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, apierrors.NewParseError("history response is not valid JSON", models.PathChatHistory)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, apierrors.NewParseError("history response is not a list", models.PathChatHistory)
	}

	history := models.History{}
	root.ForEach(func(_, value gjson.Result) bool {
		history = append(history, parseChatEntry(value))
		return true
	})

	return history, nil
}

// parseChatEntry reads one exchange from a JSON object. A missing or
// malformed timestamp is tolerated and left zero.
func parseChatEntry(value gjson.Result) models.ChatEntry {
	entry := models.ChatEntry{
		ID:       value.Get("id").String(),
		Message:  value.Get("message").String(),
		Response: value.Get("response").String(),
	}

	if ts := value.Get("timestamp").String(); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			entry.Timestamp = parsed
		}
	}

	return entry
}
