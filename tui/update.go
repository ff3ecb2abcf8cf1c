package tui

import (
	"errors"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var errStopped = errors.New("the page went away")

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := b.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tickMsg:
		cmds = append(cmds, b.onTick())
	case spinner.TickMsg:
		if b.state == loadingState {
			var cmd tea.Cmd
			b.spinnerC, cmd = b.spinnerC.Update(msg)
			cmds = append(cmds, cmd)
		}
	case progress.FrameMsg:
		model, cmd := b.progressC.Update(msg)
		b.progressC = model.(progress.Model)
		cmds = append(cmds, cmd)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit), bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
		case b.state == watchState:
			cmds = append(cmds, b.handleWatchKey(msg))
		}
	}

	return b, tea.Batch(cmds...)
}

func (b *statefulBubble) onTick() tea.Cmd {
	if b.state == errorState {
		return nil
	}
	if b.ctx.Err() != nil {
		b.raiseError(errStopped)
		return nil
	}

	if b.advance != nil {
		b.advance(b.interval)
	}

	if b.state == loadingState {
		if !b.site.Ready() {
			return b.tick()
		}
		b.setState(watchState)
	}

	b.capture()
	return b.tick()
}
