package models

import "time"

// ChatEntry is one exchange: a user message paired with the assistant's
// response. The backend assigns the ID and timestamp when the exchange is
// created; entries are immutable once received.
type ChatEntry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// History is an ordered list of chat exchanges, newest first, as returned
// by the backend.
type History []ChatEntry

// Prepend returns the history with a new exchange at the front, keeping
// newest-first order.
func (h History) Prepend(entry ChatEntry) History {
	out := make(History, 0, len(h)+1)
	out = append(out, entry)
	return append(out, h...)
}

// Chronological returns the entries oldest first, for display.
func (h History) Chronological() []ChatEntry {
	out := make([]ChatEntry, len(h))
	for i, e := range h {
		out[len(h)-1-i] = e
	}
	return out
}
