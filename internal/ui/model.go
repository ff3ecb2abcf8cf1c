// Package ui keeps the short-lived status line shown after a playback control is used.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lifetime is how long a notice stays on screen.
const Lifetime = 2 * time.Second

// Notice is a message that replaces the current status line.
type Notice string

type clearMsg struct {
	id int
}

// Model holds the current notice. The zero value shows nothing.
type Model struct {
	notice string
	id     int
}

var noticeStyle = lipgloss.NewStyle().Faint(true)

// Notify returns a command delivering text as a Notice.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return Notice(text)
	}
}

// Update shows new notices and clears them after Lifetime. A clear only applies to the notice
// it was scheduled for.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notice:
		m.id++
		m.notice = string(msg)
		id := m.id
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return clearMsg{id: id}
		})
	case clearMsg:
		if msg.id == m.id {
			m.notice = ""
		}
	}
	return nil
}

// Current returns the notice on screen, empty when none.
func (m *Model) Current() string {
	return m.notice
}

// View appends the notice to the last line of content.
func (m *Model) View(content string) string {
	if m.notice == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + noticeStyle.Render(m.notice)
	return strings.Join(lines, "\n")
}
