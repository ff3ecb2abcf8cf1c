package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nowplaying-cli/nowplaying/internal/ui"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/util"
)

const (
	seekStep   = 10.0
	volumeStep = 5
)

// handleWatchKey maps a key to one playback control, then captures the result right away so the
// view does not wait for the next tick.
func (b *statefulBubble) handleWatchKey(msg tea.KeyMsg) tea.Cmd {
	events := b.site.Events()
	k := b.keymap

	var notice string
	switch {
	case bubblesKey.Matches(msg, k.playPause):
		events.TogglePlaying()
		notice = "play/pause"
	case bubblesKey.Matches(msg, k.next):
		events.Next()
		notice = "next"
	case bubblesKey.Matches(msg, k.previous):
		events.Previous()
		notice = "previous"
	case bubblesKey.Matches(msg, k.seekForward):
		notice = b.seekBy(seekStep)
	case bubblesKey.Matches(msg, k.seekBack):
		notice = b.seekBy(-seekStep)
	case bubblesKey.Matches(msg, k.volumeUp):
		events.SetVolume(b.info.Volume + volumeStep)
		notice = "volume up"
	case bubblesKey.Matches(msg, k.volumeDown):
		events.SetVolume(b.info.Volume - volumeStep)
		notice = "volume down"
	case bubblesKey.Matches(msg, k.repeat):
		events.ToggleRepeat()
		notice = "repeat"
	case bubblesKey.Matches(msg, k.shuffle):
		events.ToggleShuffle()
		notice = "shuffle"
	case bubblesKey.Matches(msg, k.thumbsUp):
		events.ToggleThumbsUp()
		notice = "like"
	case bubblesKey.Matches(msg, k.thumbsDown):
		events.ToggleThumbsDown()
		notice = "dislike"
	default:
		return nil
	}

	b.capture()
	return ui.Notify(notice)
}

// seekBy moves the playhead by delta seconds with whichever seek control the site has.
func (b *statefulBubble) seekBy(delta float64) string {
	position, _ := util.ParseTimestamp(b.info.Position)
	duration, _ := util.ParseTimestamp(b.info.Duration)
	target := util.Max(position+delta, 0)
	if duration > 0 {
		target = util.Min(target, duration)
	}

	events := b.site.Events()
	if seeker, ok := site.SecondsSeeker(events); ok {
		seeker.SetPositionSeconds(target)
		return fmt.Sprintf("seek %s", util.FormatSeconds(target))
	}

	if seeker, ok := site.PercentageSeeker(events); ok && duration > 0 {
		seeker.SetPositionPercentage(target / duration)
		return fmt.Sprintf("seek %s", util.FormatSeconds(target))
	}

	return "seeking is not available"
}
