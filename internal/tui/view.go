package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dincharya-ai/cli/internal/render"
)

// View renders the dashboard
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerParts := []string{
		titleStyle.Render("☀ Din Charya"),
		hintStyle.Render("  •  "),
		dimStyle.Render("your daily routine assistant"),
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	// Tab bar
	sections = append(sections, m.renderTabs())

	// Active section
	var content string
	switch m.tab {
	case TabChat:
		content = m.renderChat(contentWidth)
	case TabRoutine:
		content = m.renderRoutine(contentWidth)
	case TabWeather:
		content = m.renderWeather(contentWidth)
	case TabNews:
		content = m.renderNews(contentWidth)
	}
	sections = append(sections, content)

	// Notice line
	if m.notice != "" {
		style := noticeStyle
		prefix := "✓ "
		if m.noticeIsErr {
			style = noticeErrorStyle
			prefix = "✗ "
		}
		sections = append(sections, style.Render(prefix+m.notice))
	}

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabs renders the tab bar with the active tab highlighted.
func (m Model) renderTabs() string {
	var items []string
	for _, t := range tabOrder {
		if t == m.tab {
			items = append(items, tabActiveStyle.Render(t.String()))
		} else {
			items = append(items, tabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, items...)
}

// renderChat renders the conversation viewport and the input panel.
func (m Model) renderChat(contentWidth int) string {
	var messagesContent string
	if len(m.history) == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}

	messagesPanel := contentAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent)

	var inputContent string
	switch {
	case m.sending:
		inputContent = loadingStyle.Render(m.spinner.View() + " Thinking...")
	case m.listening:
		inputContent = listeningStyle.Render("● Listening...")
	default:
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	inputPanel := inputPanelStyle.Width(contentWidth).Render(inputContent)

	return lipgloss.JoinVertical(lipgloss.Left, messagesPanel, inputPanel)
}

// renderWelcome renders the empty-conversation placeholder.
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	title := sectionTitleStyle.Width(width).Align(lipgloss.Center).Render("Namaste! 🙏")
	subtitle := emptySectionStyle.Width(width).Align(lipgloss.Center).
		Render("Ask me about your routine, the weather, or today's news")

	content := lipgloss.JoinVertical(lipgloss.Center, "", title, "", subtitle, "")

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderRoutine renders the log form and the recent entries.
func (m Model) renderRoutine(contentWidth int) string {
	var parts []string

	parts = append(parts, sectionTitleStyle.Render("Log today's routine"))

	if m.saving {
		parts = append(parts, loadingStyle.Render(m.spinner.View()+" Saving..."))
	} else {
		parts = append(parts, m.form.View())
	}

	parts = append(parts, "")
	parts = append(parts, sectionTitleStyle.Render("Recent entries"))

	if len(m.routines) == 0 {
		parts = append(parts, emptySectionStyle.Render("No routine entries yet"))
	} else {
		for _, e := range m.routines {
			line := fmt.Sprintf(
				"%s  sleep %.1fh  water %d  exercise %dm  mood %s",
				e.Date, e.SleepHours, e.WaterGlasses, e.ExerciseMinutes, e.Mood,
			)
			parts = append(parts, valueStyle.Render(line))
		}
	}

	return contentAreaStyle.Width(contentWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...),
	)
}

// renderWeather renders the current weather snapshot.
func (m Model) renderWeather(contentWidth int) string {
	var parts []string
	parts = append(parts, sectionTitleStyle.Render("Current weather"))

	if m.weather == nil {
		parts = append(parts, emptySectionStyle.Render("Weather is unavailable right now"))
	} else {
		w := m.weather
		parts = append(parts,
			valueStyle.Render(fmt.Sprintf("Location     %s", w.Location)),
			valueStyle.Render(fmt.Sprintf("Temperature  %.1f°C", w.Temperature)),
			valueStyle.Render(fmt.Sprintf("Feels like   %.1f°C", w.FeelsLike)),
			valueStyle.Render(fmt.Sprintf("Humidity     %d%%", w.Humidity)),
			valueStyle.Render(fmt.Sprintf("Condition    %s", w.Condition)),
		)
	}

	parts = append(parts, "", dimStyle.Render("ctrl+r to refresh"))

	return contentAreaStyle.Width(contentWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...),
	)
}

// renderNews renders the headline list.
func (m Model) renderNews(contentWidth int) string {
	var parts []string
	parts = append(parts, sectionTitleStyle.Render("Headlines"))

	if len(m.news) == 0 {
		parts = append(parts, emptySectionStyle.Render("No news right now"))
	} else {
		for _, item := range m.news {
			parts = append(parts, valueStyle.Render("• "+item.Title))
			meta := item.Source
			if item.Time != "" {
				meta += "  " + item.Time
			}
			parts = append(parts, dimStyle.Render("  "+meta))
		}
	}

	parts = append(parts, "", dimStyle.Render("ctrl+r to refresh"))

	return contentAreaStyle.Width(contentWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...),
	)
}

// renderStatusBar renders the bottom status bar with shortcuts.
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Tab", "Switch"},
	}

	if m.tab == TabChat {
		shortcuts = append(shortcuts,
			struct{ key, desc string }{"Enter", "Send"},
			struct{ key, desc string }{"Ctrl+T", "Voice"},
			struct{ key, desc string }{"Ctrl+Y", "Copy"},
		)
	} else {
		shortcuts = append(shortcuts,
			struct{ key, desc string }{"Ctrl+R", "Refresh"},
		)
	}
	shortcuts = append(shortcuts, struct{ key, desc string }{"Esc", "Quit"})

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the conversation viewport, oldest exchange first.
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, entry := range m.history.Chronological() {
		if i > 0 {
			content.WriteString("\n")
		}

		// User message
		label := userLabelStyle.Render("⬤ You")
		bubble := userBubbleStyle.Width(bubbleWidth).Render(entry.Message)
		content.WriteString(label + "\n" + bubble + "\n")

		// Assistant response rendered as markdown
		label = assistantLabelStyle.Render("☀ Din Charya")
		opts := render.Options{Width: bubbleWidth - 4, Style: m.markdownStyle}
		rendered, err := render.Markdown(entry.Response, opts)
		if err != nil {
			rendered = entry.Response
		}
		rendered = strings.TrimRight(rendered, "\n")
		bubble = assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
		content.WriteString(label + "\n" + bubble + "\n")
	}

	m.viewport.SetContent(content.String())
}
