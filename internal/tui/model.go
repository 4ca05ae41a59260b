package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dincharya-ai/cli/internal/api"
	"github.com/dincharya-ai/cli/internal/models"
	"github.com/dincharya-ai/cli/internal/speech"
)

// noticeDuration is how long a transient notice stays on screen.
const noticeDuration = 4 * time.Second

// Tab identifies one dashboard section.
type Tab int

// Dashboard tabs in display order
const (
	TabChat Tab = iota
	TabRoutine
	TabWeather
	TabNews
)

var tabOrder = []Tab{TabChat, TabRoutine, TabWeather, TabNews}

func (t Tab) String() string {
	switch t {
	case TabChat:
		return "Chat"
	case TabRoutine:
		return "Routine"
	case TabWeather:
		return "Weather"
	case TabNews:
		return "News"
	}
	return "?"
}

// Options configures the dashboard at startup.
type Options struct {
	HistoryLimit  int
	MarkdownStyle string
}

// Model represents the dashboard TUI state
type Model struct {
	client     api.ClientInterface
	recognizer speech.Recognizer

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	form     *huh.Form
	fields   *routineFields

	// State
	tab           Tab
	history       models.History
	weather       *models.WeatherSnapshot
	news          []models.NewsItem
	routines      []models.RoutineEntry
	historyLimit  int
	markdownStyle string

	sending   bool
	saving    bool
	listening bool
	pending   string // message in flight, restored into the input on failure

	// Transient notice. noticeSeq guards against a stale expiry clearing
	// a newer notice.
	notice      string
	noticeIsErr bool
	noticeSeq   int

	// Dimensions
	ready  bool
	width  int
	height int
}

// NewDashboard creates the dashboard TUI model
func NewDashboard(client api.ClientInterface, recognizer speech.Recognizer, opts Options) Model {
	// Create textarea for chat input
	ta := textarea.New()
	ta.Placeholder = "Ask about your day, weather, news..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	// Style the textarea
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	// Create spinner
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = models.DefaultHistoryLimit
	}
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = "dark"
	}

	fields := &routineFields{}

	return Model{
		client:        client,
		recognizer:    recognizer,
		textarea:      ta,
		spinner:       s,
		form:          newRoutineForm(fields),
		fields:        fields,
		tab:           TabChat,
		historyLimit:  opts.HistoryLimit,
		markdownStyle: opts.MarkdownStyle,
	}
}

// Init loads every dashboard section concurrently.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.form.Init(),
		m.loadHistory(),
		m.loadWeather(),
		m.loadNews(),
		m.loadRoutines(),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate component heights
		headerHeight := 4 // Header panel with border
		tabsHeight := 1   // Tab bar
		inputHeight := 6  // Input panel with border
		statusHeight := 2 // Status bar plus notice line
		padding := 2      // Extra spacing

		vpHeight := m.height - headerHeight - tabsHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		// Initialize viewport on first size message
		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.form = m.form.WithWidth(contentWidth - 4)
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.sending {
				// A send in flight cannot be cancelled
				return m, nil
			}
			return m, tea.Quit

		case "tab":
			m.tab = m.nextTab(1)
			return m, nil

		case "shift+tab":
			m.tab = m.nextTab(-1)
			return m, nil

		case "ctrl+r":
			return m, m.refreshCurrentTab()

		case "ctrl+t":
			if m.tab == TabChat {
				cmd = m.startListening()
				return m, cmd
			}

		case "ctrl+y":
			if m.tab == TabChat {
				cmd = m.copyLastResponse()
				return m, cmd
			}

		case "enter":
			if m.tab == TabChat && !m.sending && !m.listening {
				if model, cmd, handled := m.handleSend(); handled {
					return model, cmd
				}
			}
		}

	case historyLoadedMsg:
		if msg.err == nil {
			m.history = msg.history
		}
		m.updateViewport()
		m.viewport.GotoBottom()

	case weatherLoadedMsg:
		if msg.err == nil {
			m.weather = msg.snapshot
		}

	case newsLoadedMsg:
		if msg.err == nil {
			m.news = msg.items
		}

	case routinesLoadedMsg:
		if msg.err == nil {
			m.routines = msg.entries
		}

	case chatResponseMsg:
		m.sending = false
		m.pending = ""
		if msg.entry != nil {
			m.history = m.history.Prepend(*msg.entry)
		}
		m.updateViewport()
		m.viewport.GotoBottom()

	case chatErrMsg:
		m.sending = false
		// Give the message back so the user can edit and resend
		m.textarea.SetValue(msg.message)
		m.pending = ""
		cmds = append(cmds, m.setNotice("message failed to send", true))

	case routineSavedMsg:
		m.saving = false
		if msg.saved != nil {
			m.routines = append([]models.RoutineEntry{*msg.saved}, m.routines...)
		}
		m.resetRoutineForm()
		cmds = append(cmds, m.form.Init())
		cmds = append(cmds, m.setNotice("routine saved", false))

	case routineErrMsg:
		m.saving = false
		// Keep the entered values so the user can retry
		m.form = newRoutineForm(m.fields)
		cmds = append(cmds, m.form.Init())
		cmds = append(cmds, m.setNotice("failed to save routine", true))

	case transcriptMsg:
		m.listening = false
		if msg.err != nil {
			cmds = append(cmds, m.setNotice(transcriptFailureNotice(msg.err), true))
		} else {
			m.textarea.SetValue(msg.text)
		}

	case noticeExpiredMsg:
		if msg.id == m.noticeSeq {
			m.notice = ""
		}

	case spinner.TickMsg:
		if m.sending || m.saving || m.listening {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Update child components for the active tab. Only KeyMsg reaches the
	// textarea to prevent escape sequence leaks.
	switch m.tab {
	case TabChat:
		if !m.sending && !m.listening {
			if _, ok := msg.(tea.KeyMsg); ok {
				m.textarea, cmd = m.textarea.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)

	case TabRoutine:
		if !m.saving {
			form, cmd := m.form.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.form = f
			}
			cmds = append(cmds, cmd)

			if m.form.State == huh.StateCompleted {
				if submitCmd := m.submitRoutine(); submitCmd != nil {
					return m, tea.Batch(append(cmds, submitCmd)...)
				}
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// nextTab cycles through the tabs in the given direction.
func (m Model) nextTab(direction int) Tab {
	idx := 0
	for i, t := range tabOrder {
		if t == m.tab {
			idx = i
			break
		}
	}
	idx = (idx + direction + len(tabOrder)) % len(tabOrder)
	return tabOrder[idx]
}

// refreshCurrentTab reloads the data behind the active tab.
func (m Model) refreshCurrentTab() tea.Cmd {
	switch m.tab {
	case TabChat:
		return m.loadHistory()
	case TabRoutine:
		return m.loadRoutines()
	case TabWeather:
		return m.loadWeather()
	case TabNews:
		return m.loadNews()
	}
	return nil
}

// handleSend validates the chat input and starts the send. It reports
// handled=false when the input is empty so the key falls through.
func (m Model) handleSend() (Model, tea.Cmd, bool) {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		return m, nil, false
	}

	if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
		return m, tea.Quit, true
	}

	m.sending = true
	m.pending = input
	m.textarea.Reset()

	return m, tea.Batch(
		m.sendMessage(input),
		m.spinner.Tick,
	), true
}

// startListening kicks off one voice capture, or explains why it cannot.
func (m *Model) startListening() tea.Cmd {
	if m.listening {
		return nil
	}
	if m.recognizer == nil || !m.recognizer.Available() {
		return m.setNotice("voice input is not available", true)
	}

	m.listening = true
	return tea.Batch(m.listen(), m.spinner.Tick)
}

// copyLastResponse copies the newest assistant response to the clipboard.
func (m *Model) copyLastResponse() tea.Cmd {
	if len(m.history) == 0 {
		return m.setNotice("nothing to copy yet", true)
	}
	if err := clipboard.WriteAll(m.history[0].Response); err != nil {
		return m.setNotice("failed to copy to clipboard", true)
	}
	return m.setNotice("response copied", false)
}

// submitRoutine builds the entry from the completed form and posts it.
func (m *Model) submitRoutine() tea.Cmd {
	entry, err := m.fields.entry(m.client.UserID())
	if err != nil {
		// Form-level validation should have caught this; start over
		m.form = newRoutineForm(m.fields)
		initCmd := m.form.Init()
		noticeCmd := m.setNotice("check the routine values", true)
		return tea.Batch(initCmd, noticeCmd)
	}

	m.saving = true
	return tea.Batch(m.saveRoutine(entry), m.spinner.Tick)
}

// resetRoutineForm clears the form back to an empty state.
func (m *Model) resetRoutineForm() {
	*m.fields = routineFields{}
	m.form = newRoutineForm(m.fields)
}

// setNotice shows a transient message and schedules its expiry.
func (m *Model) setNotice(text string, isErr bool) tea.Cmd {
	m.notice = text
	m.noticeIsErr = isErr
	m.noticeSeq++
	id := m.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

// transcriptFailureNotice maps recognizer errors to a short user notice.
func transcriptFailureNotice(err error) string {
	switch {
	case errors.Is(err, speech.ErrNoSpeech):
		return "no speech detected"
	case errors.Is(err, speech.ErrUnavailable):
		return "voice input is not available"
	}
	return "voice input failed"
}

// RunDashboard starts the dashboard TUI
func RunDashboard(client api.ClientInterface, recognizer speech.Recognizer, opts Options) error {
	m := NewDashboard(client, recognizer, opts)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
