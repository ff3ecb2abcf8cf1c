package youtube

import (
	"math"

	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/platform"
	"github.com/nowplaying-cli/nowplaying/selector"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/util"
)

type info struct {
	a *Adapter
}

// fromVideo resolves the main video inside the container and reads a value off it.
func fromVideo[T any](snap Snapshot, read func(m *dom.Media) T, fallback T) T {
	return selector.Resolve(snap.Container, video, func(el *dom.Element) (T, error) {
		m, err := selector.Media(el)
		if err != nil {
			var zero T
			return zero, err
		}
		return read(m), nil
	}, fallback)
}

func (i info) Player() string {
	return constant.YouTube
}

func (i info) State() site.StateMode {
	return fromVideo(i.a.Snapshot(), func(m *dom.Media) site.StateMode {
		if m.Paused() {
			return site.Paused
		}
		return site.Playing
	}, site.Paused)
}

func (i info) Title() string {
	snap := i.a.Snapshot()
	if snap.Container == nil {
		return ""
	}
	return snap.Title
}

func (i info) Artist() string {
	snap := i.a.Snapshot()
	if snap.Container == nil {
		return ""
	}
	return snap.Artist
}

func (i info) Album() string {
	snap := i.a.Snapshot()
	if snap.Container == nil {
		return ""
	}
	return snap.Album
}

func (i info) Cover() string {
	snap := i.a.Snapshot()
	if snap.Container == nil {
		return ""
	}

	link, ok := platform.BiggestThumbnail(snap.Thumbnails)
	if !ok {
		return ""
	}
	return util.TrimQuery(link)
}

func (i info) Duration() string {
	return fromVideo(i.a.Snapshot(), func(m *dom.Media) string {
		return util.FormatSeconds(m.Duration())
	}, "0:00")
}

func (i info) Position() string {
	return fromVideo(i.a.Snapshot(), func(m *dom.Media) string {
		return util.FormatSeconds(m.CurrentTime())
	}, "0:00")
}

func (i info) Volume() int {
	return fromVideo(i.a.Snapshot(), func(m *dom.Media) int {
		if m.Muted() {
			return 0
		}
		return int(math.Round(m.Volume() * 100))
	}, 100)
}

func (i info) Rating() site.Rating {
	snap := i.a.Snapshot()

	if selector.Resolve(i.a.thumbsScope(snap, likeButton), likeButton, selector.Pressed, false) {
		return site.RatingLiked
	}
	if selector.Resolve(i.a.thumbsScope(snap, dislikeButton), dislikeButton, selector.Pressed, false) {
		return site.RatingDisliked
	}
	return site.RatingNone
}

func (i info) Repeat() site.RepeatMode {
	snap := i.a.Snapshot()

	// Looping a playlist on a single video loops the video element itself.
	if fromVideo(snap, (*dom.Media).Loop, false) {
		return site.RepeatOne
	}
	if selector.Resolve(snap.Container, playlistIcon, selector.Attr("d"), "") == constant.YouTubeLoopPlaylistPath {
		return site.RepeatAll
	}
	return site.RepeatNone
}

func (i info) Shuffle() bool {
	return selector.Resolve(i.a.Snapshot().Container, shuffleButton, selector.Pressed, false)
}
