package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dincharya-ai/cli/internal/logger"
	"github.com/dincharya-ai/cli/internal/models"
)

// Messages produced by the background commands. Each loader carries its
// own error so a failed fetch only empties its own section.
type (
	historyLoadedMsg struct {
		history models.History
		err     error
	}
	weatherLoadedMsg struct {
		snapshot *models.WeatherSnapshot
		err      error
	}
	newsLoadedMsg struct {
		items []models.NewsItem
		err   error
	}
	routinesLoadedMsg struct {
		entries []models.RoutineEntry
		err     error
	}
	chatResponseMsg struct {
		entry *models.ChatEntry
	}
	// chatErrMsg carries the original message so the input can be restored
	chatErrMsg struct {
		err     error
		message string
	}
	routineSavedMsg struct {
		saved *models.RoutineEntry
	}
	routineErrMsg struct {
		err error
	}
	transcriptMsg struct {
		text string
		err  error
	}
	noticeExpiredMsg struct {
		id int
	}
)

// loadHistory fetches the chat history once. Failure is logged and leaves
// the chat section empty.
func (m Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		history, err := m.client.FetchHistory(m.historyLimit)
		if err != nil {
			logger.Error("failed to load chat history", "err", err)
		}
		return historyLoadedMsg{history: history, err: err}
	}
}

// loadWeather fetches the current weather once.
func (m Model) loadWeather() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.client.FetchWeather()
		if err != nil {
			logger.Error("failed to load weather", "err", err)
		}
		return weatherLoadedMsg{snapshot: snapshot, err: err}
	}
}

// loadNews fetches the headlines once.
func (m Model) loadNews() tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.FetchNews()
		if err != nil {
			logger.Error("failed to load news", "err", err)
		}
		return newsLoadedMsg{items: items, err: err}
	}
}

// loadRoutines fetches the recent routine entries once.
func (m Model) loadRoutines() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.client.FetchRoutineHistory(models.DefaultRoutineLimit)
		if err != nil {
			logger.Error("failed to load routine history", "err", err)
		}
		return routinesLoadedMsg{entries: entries, err: err}
	}
}

// sendMessage posts one chat message to the backend.
func (m Model) sendMessage(message string) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.client.SendMessage(message)
		if err != nil {
			logger.Error("failed to send chat message", "err", err)
			return chatErrMsg{err: err, message: message}
		}
		return chatResponseMsg{entry: entry}
	}
}

// saveRoutine posts one routine entry to the backend.
func (m Model) saveRoutine(entry models.RoutineEntry) tea.Cmd {
	return func() tea.Msg {
		saved, err := m.client.SaveRoutine(entry)
		if err != nil {
			logger.Error("failed to save routine", "err", err)
			return routineErrMsg{err: err}
		}
		return routineSavedMsg{saved: saved}
	}
}

// listen records a single utterance through the recognizer.
func (m Model) listen() tea.Cmd {
	return func() tea.Msg {
		text, err := m.recognizer.Listen(context.Background())
		if err != nil {
			logger.Error("voice input failed", "err", err)
		}
		return transcriptMsg{text: text, err: err}
	}
}
