// Package models contains data types and constants for the Din Charya API.
package models

// API paths, joined to the configured backend base URL
const (
	PathHealth      = "/api/"
	PathChat        = "/api/chat"
	PathChatHistory = "/api/chat/history"
	PathWeather     = "/api/weather"
	PathNews        = "/api/news"
	PathRoutine     = "/api/routine"
)

// Backend defaults
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultUserID  = "default_user"

	// DefaultHistoryLimit matches the backend's chat history page size
	DefaultHistoryLimit = 10

	// DefaultRoutineLimit matches the backend's routine history page size
	DefaultRoutineLimit = 7
)

// UserAgent identifies the client on every request
const UserAgent = "dincharya-cli/0.1"

// DefaultHeaders returns the headers sent with every API request
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Accept":     "application/json",
		"User-Agent": UserAgent,
	}
}

// Location is a lat/lon pair sent with chat requests so the backend can
// attach weather context to the conversation.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DefaultLocation is the backend's own fallback location (New Delhi).
var DefaultLocation = Location{Lat: 28.6139, Lon: 77.2090}
