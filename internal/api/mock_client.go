package api

import "github.com/dincharya-ai/cli/internal/models"

// MockClient is a mock implementation of ClientInterface for testing the
// TUI and command layers without a backend.
type MockClient struct {
	// Mock return values
	PingErr           error
	SendMessageVal    *models.ChatEntry
	SendMessageErr    error
	HistoryVal        models.History
	HistoryErr        error
	WeatherVal        *models.WeatherSnapshot
	WeatherErr        error
	NewsVal           []models.NewsItem
	NewsErr           error
	SaveRoutineVal    *models.RoutineEntry
	SaveRoutineErr    error
	RoutineHistoryVal []models.RoutineEntry
	RoutineHistoryErr error
	UserIDVal         string
	LocationVal       models.Location

	// Call counters/recorders
	SendMessageCalls int
	LastMessage      string
	SaveRoutineCalls int
	LastRoutine      models.RoutineEntry
	HistoryCalls     int
	WeatherCalls     int
	NewsCalls        int

	RoutineHistoryCalls int
	LastRoutineLimit    int
}

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

func (m *MockClient) Ping() error {
	return m.PingErr
}

func (m *MockClient) SendMessage(message string) (*models.ChatEntry, error) {
	m.SendMessageCalls++
	m.LastMessage = message
	return m.SendMessageVal, m.SendMessageErr
}

func (m *MockClient) FetchHistory(limit int) (models.History, error) {
	m.HistoryCalls++
	return m.HistoryVal, m.HistoryErr
}

func (m *MockClient) FetchWeather() (*models.WeatherSnapshot, error) {
	m.WeatherCalls++
	return m.WeatherVal, m.WeatherErr
}

func (m *MockClient) FetchNews() ([]models.NewsItem, error) {
	m.NewsCalls++
	return m.NewsVal, m.NewsErr
}

func (m *MockClient) SaveRoutine(entry models.RoutineEntry) (*models.RoutineEntry, error) {
	m.SaveRoutineCalls++
	m.LastRoutine = entry
	return m.SaveRoutineVal, m.SaveRoutineErr
}

func (m *MockClient) FetchRoutineHistory(limit int) ([]models.RoutineEntry, error) {
	m.RoutineHistoryCalls++
	m.LastRoutineLimit = limit
	return m.RoutineHistoryVal, m.RoutineHistoryErr
}

func (m *MockClient) UserID() string {
	if m.UserIDVal != "" {
		return m.UserIDVal
	}
	return models.DefaultUserID
}

func (m *MockClient) Location() models.Location {
	return m.LocationVal
}
