package youtube

import (
	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/selector"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/util"
)

type events struct {
	a *Adapter
}

// withVideo runs fn on the main video, if there is one.
func withVideo(snap Snapshot, op string, fn func(m *dom.Media)) bool {
	return selector.Invoke(snap.Container, video, func(el *dom.Element) {
		if m, ok := el.Media(); ok {
			fn(m)
		}
	}, op)
}

func (e events) TogglePlaying() {
	withVideo(e.a.Snapshot(), "togglePlaying", func(m *dom.Media) {
		if m.Paused() {
			m.Play()
		} else {
			m.Pause()
		}
	})
}

func (e events) Next() {
	if near, ok := e.a.Chapters(); ok {
		if next, ok := near.Next.Get(); ok {
			e.SetPositionSeconds(float64(next))
			return
		}
	}

	selector.Invoke(e.a.Snapshot().Container, nextButton, selector.Click, "next")
}

func (e events) Previous() {
	if near, ok := e.a.Chapters(); ok {
		if prev, ok := near.Previous.Get(); ok {
			e.SetPositionSeconds(float64(prev))
			return
		}
	}

	snap := e.a.Snapshot()
	withVideo(snap, "previous", func(m *dom.Media) {
		if m.CurrentTime() > restartThreshold {
			m.SetCurrentTime(0)
			return
		}
		selector.Invoke(snap.Container, prevButton, selector.Click, "previous")
	})
}

func (e events) SetPositionSeconds(seconds float64) {
	withVideo(e.a.Snapshot(), "setPositionSeconds", func(m *dom.Media) {
		m.SetCurrentTime(seconds)
	})
}

func (e events) SetVolume(volume int) {
	withVideo(e.a.Snapshot(), "setVolume", func(m *dom.Media) {
		m.SetMuted(false)
		m.SetVolume(float64(util.Clamp(volume, 0, 100)) / 100)
	})
}

// ToggleRepeat cycles the playlist loop button inside a playlist and loops the video otherwise.
func (e events) ToggleRepeat() {
	snap := e.a.Snapshot()

	if snap.PlaylistID != "" && selector.Invoke(snap.Container, playlistMenu, selector.Click, "") {
		return
	}
	withVideo(snap, "toggleRepeat", func(m *dom.Media) {
		m.SetLoop(!m.Loop())
	})
}

func (e events) ToggleShuffle() {
	selector.Invoke(e.a.Snapshot().Container, shuffleButton, selector.Click, "toggleShuffle")
}

func (e events) ToggleThumbsUp() {
	selector.Invoke(e.a.thumbsScope(e.a.Snapshot(), likeButton), likeButton, selector.Click, "toggleThumbsUp")
}

func (e events) ToggleThumbsDown() {
	selector.Invoke(e.a.thumbsScope(e.a.Snapshot(), dislikeButton), dislikeButton, selector.Click, "toggleThumbsDown")
}

func (e events) SetRating(rating int) {
	site.LikeDislike(e.a.Info(), e, rating)
}
