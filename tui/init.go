package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

func (b *statefulBubble) tick() tea.Cmd {
	return tea.Tick(b.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the site's background refresh and the view's own clock.
func (b *statefulBubble) Init() tea.Cmd {
	b.site.Init(b.ctx)
	return tea.Batch(b.spinnerC.Tick, b.tick())
}
