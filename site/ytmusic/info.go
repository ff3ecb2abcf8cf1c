package ytmusic

import (
	"strings"

	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/selector"
	"github.com/nowplaying-cli/nowplaying/site"
)

type info struct {
	a *Adapter
}

func (i info) root() *dom.Element {
	return i.a.page.Root()
}

func (i info) Player() string {
	return constant.YouTubeMusic
}

func (i info) State() site.StateMode {
	return selector.Report(i.root(), video, func(el *dom.Element) (site.StateMode, error) {
		m, err := selector.Media(el)
		if err != nil {
			return site.Paused, err
		}
		if m.Paused() {
			return site.Paused, nil
		}
		return site.Playing, nil
	}, site.Paused, "state")
}

func (i info) Title() string {
	if md := i.a.session.Metadata(); md != nil {
		return md.Title
	}
	return ""
}

func (i info) Artist() string {
	if md := i.a.session.Metadata(); md != nil {
		return md.Artist
	}
	return ""
}

func (i info) Album() string {
	if md := i.a.session.Metadata(); md != nil {
		return md.Album
	}
	return ""
}

func (i info) Cover() string {
	return i.a.resolveCover()
}

// timePart reads one side of the player bar's "position / duration" label.
func (i info) timePart(position bool, op string) string {
	return selector.Report(i.root(), timeInfo, func(el *dom.Element) (string, error) {
		pos, dur, _ := strings.Cut(el.Text(), " / ")
		if position {
			return strings.TrimSpace(pos), nil
		}
		return strings.TrimSpace(dur), nil
	}, "0:00", op)
}

func (i info) Duration() string {
	return i.timePart(false, "duration")
}

func (i info) Position() string {
	return i.timePart(true, "position")
}

// Volume reads the cached player volume; the media element's own volume is not the player's.
func (i info) Volume() int {
	cached := i.a.cachedVolume()
	return selector.Report(i.root(), video, func(el *dom.Element) (int, error) {
		m, err := selector.Media(el)
		if err != nil {
			return cached, err
		}
		if m.Muted() {
			return 0, nil
		}
		return cached, nil
	}, cached, "volume")
}

func (i info) Rating() site.Rating {
	if selector.Report(i.root(), likeButton, selector.Pressed, false, "rating") {
		return site.RatingLiked
	}
	if selector.Report(i.root(), dislikeButton, selector.Pressed, false, "rating") {
		return site.RatingDisliked
	}
	return site.RatingNone
}

func (i info) Repeat() site.RepeatMode {
	return selector.Report(i.root(), playerBar, func(el *dom.Element) (site.RepeatMode, error) {
		mode, _ := el.Attr("repeat-mode_")
		switch mode {
		case "ALL":
			return site.RepeatAll, nil
		case "ONE":
			return site.RepeatOne, nil
		default:
			return site.RepeatNone, nil
		}
	}, site.RepeatNone, "repeat")
}

// Shuffle is always off: the player shuffles the queue once instead of toggling a mode.
func (i info) Shuffle() bool {
	return false
}
