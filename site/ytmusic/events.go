package ytmusic

import (
	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/log"
	"github.com/nowplaying-cli/nowplaying/selector"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/util"
	"github.com/samber/mo"
)

type events struct {
	a *Adapter
}

func (e events) root() *dom.Element {
	return e.a.page.Root()
}

func (e events) click(raw, op string) {
	selector.Invoke(e.root(), raw, selector.Click, op)
}

func (e events) TogglePlaying() {
	e.click(playPause, "togglePlaying")
}

func (e events) Next() {
	e.click(nextButton, "next")
}

func (e events) Previous() {
	e.click(prevButton, "previous")
}

// SetPositionPercentage presses the progress bar at fraction of its width. The player has no seek
// API reachable from the page, so this emulates the user clicking the bar.
func (e events) SetPositionPercentage(fraction float64) {
	fraction = util.Clamp(fraction, 0, 1)

	selector.Invoke(e.root(), progressBar, func(el *dom.Element) {
		r := el.Rect()
		x := r.Left + fraction*r.Width
		y := r.Top + r.Height/2

		el.Dispatch(dom.Event{Kind: dom.MouseDown, ClientX: x, ClientY: y})
		el.Dispatch(dom.Event{Kind: dom.MouseUp, ClientX: x, ClientY: y})
	}, "setPositionPercentage")
}

// SetVolume unmutes through the player's own button, since unmuting the media element directly
// does not stick, then sets the player volume and caches it right away.
func (e events) SetVolume(volume int) {
	volume = util.Clamp(volume, 0, 100)

	selector.Invoke(e.root(), video, func(el *dom.Element) {
		if m, ok := el.Media(); ok && m.Muted() {
			e.click(volumeButton, "setVolume")
		}
	}, "setVolume")

	if err := e.a.bridge.SetVolume(e.a.background(), volume); err != nil {
		log.Warnf("failed to set youtube music volume: %v", err)
	}
	e.a.snapshot.Store(Snapshot{Volume: mo.Some(volume)})
}

func (e events) ToggleRepeat() {
	e.click(repeatButton, "toggleRepeat")
}

func (e events) ToggleShuffle() {
	e.click(shuffleButton, "toggleShuffle")
}

func (e events) ToggleThumbsUp() {
	e.click(thumbsUp, "toggleThumbsUp")
}

func (e events) ToggleThumbsDown() {
	e.click(thumbsDown, "toggleThumbsDown")
}

func (e events) SetRating(rating int) {
	site.LikeDislike(e.a.Info(), e, rating)
}
