// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nowplaying-cli/nowplaying/site"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Site site.Site

	// Interval is how often the view reads the site again.
	Interval time.Duration

	// Advance moves a simulated page clock forward by the elapsed interval. Nil for pages that
	// play on their own.
	Advance func(d time.Duration)
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(ctx context.Context, options *Options) error {
	if options.Site == nil {
		return errors.New("no site to watch")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bubble := newBubble(ctx, options)
	defer site.Stop(options.Site)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
