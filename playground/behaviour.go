package playground

import (
	"fmt"

	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/util"
	"github.com/samber/lo"
)

const (
	ytLike       = "#segmented-like-button button, #like-button button"
	ytDislike    = "#segmented-dislike-button button, #dislike-button button"
	ytLoopButton = "#playlist-action-menu button"
	ytLoopIcon   = "#playlist-action-menu path"

	musicThumbs    = ".middle-controls-buttons"
	musicPlayPause = "#play-pause-button"
	musicVolume    = ".volume"
	musicRepeat    = ".repeat"
	musicBar       = "ytmusic-player-bar"
	musicProgress  = "#progress-bar tp-yt-paper-progress"
	musicTime      = ".time-info.ytmusic-player-bar"

	// Icons the playlist loop button cycles through after the loop-playlist one.
	ytLoopOnePath = "M13,15h-1.37v-4.52l-1.3,0.38v-1.07l2.55-0.88H13V15z M20,14h2v5L5.84,19.02l1.77,1.77l-1.41,1.41L1.99,18l4.21-4.21l1.41,1.41l-1.82,1.82L20,17V14z"
	ytLoopOffPath = "M21,13h1v5L3.93,18.03l2.62,2.62l-0.71,0.71L1.99,17.5l3.85-3.85l0.71,0.71l-2.67,2.67L21,17V13z"
)

var repeatCycle = map[string]string{
	"NONE": "ALL",
	"ALL":  "ONE",
	"ONE":  "NONE",
}

// install wires the page behaviours the real players implement in script: toggle buttons, the
// thumbs pairs, play/pause, mute, repeat cycling and progress bar seeking.
func install(page *dom.Page) {
	root := page.Root()
	page.Listen(root, dom.Click, func(ev dom.Event) {
		toggle(ev.Target)
	})

	if btn := page.First(musicPlayPause); btn != nil {
		page.Listen(btn, dom.Click, func(dom.Event) {
			withMedia(page, func(m *dom.Media) {
				if m.Paused() {
					m.Play()
				} else {
					m.Pause()
				}
			})
		})
	}

	if btn := page.First(musicVolume); btn != nil {
		page.Listen(btn, dom.Click, func(dom.Event) {
			withMedia(page, func(m *dom.Media) { m.SetMuted(!m.Muted()) })
		})
	}

	if btn := page.First(musicRepeat); btn != nil {
		page.Listen(btn, dom.Click, func(dom.Event) {
			bar := page.First(musicBar)
			if bar == nil {
				return
			}
			mode, _ := bar.Attr("repeat-mode_")
			next, ok := repeatCycle[mode]
			if !ok {
				next = "ALL"
			}
			bar.SetAttr("repeat-mode_", next)
		})
	}

	if btn := page.First(ytLoopButton); btn != nil {
		page.Listen(btn, dom.Click, func(dom.Event) {
			cycleLoop(page)
		})
	}

	if bar := page.First(musicProgress); bar != nil {
		seek := func(ev dom.Event) {
			r := bar.Rect()
			if r.Width <= 0 {
				return
			}
			fraction := util.Clamp((ev.ClientX-r.Left)/r.Width, 0, 1)
			withMedia(page, func(m *dom.Media) {
				m.SetCurrentTime(fraction * m.Duration())
			})
			syncTime(page)
		}
		page.Listen(bar, dom.MouseDown, seek)
		page.Listen(bar, dom.MouseUp, seek)
	}
}

// toggle flips the aria-pressed state of the toggle the click landed in. Turning a thumb on turns
// its rival off.
func toggle(target *dom.Element) {
	if target == nil {
		return
	}

	el := target.Closest("[aria-pressed]")
	if el == nil {
		return
	}

	on := !pressed(el)
	setPressed(el, on)
	if !on {
		return
	}
	for _, rival := range rivals(el) {
		setPressed(rival, false)
	}
}

func rivals(el *dom.Element) []*dom.Element {
	if group := el.Closest(musicThumbs); group != nil {
		return lo.Reject(group.Find("[aria-pressed]"), func(other *dom.Element, _ int) bool {
			return other.Is(el)
		})
	}

	var other string
	switch {
	case el.Matches(ytLike):
		other = ytDislike
	case el.Matches(ytDislike):
		other = ytLike
	default:
		return nil
	}

	// The nearest pair is the one that belongs to the same video.
	for p := el.Parent(); p != nil; p = p.Parent() {
		if found := p.First(other); found != nil {
			return []*dom.Element{found}
		}
	}
	return nil
}

func pressed(el *dom.Element) bool {
	v, _ := el.Attr("aria-pressed")
	return v == "true"
}

func setPressed(el *dom.Element, on bool) {
	el.SetAttr("aria-pressed", fmt.Sprint(on))
}

// cycleLoop steps the YouTube playlist loop button: off, whole playlist, current video.
func cycleLoop(page *dom.Page) {
	icon := page.First(ytLoopIcon)
	if icon == nil {
		return
	}

	d, _ := icon.Attr("d")
	switch d {
	case constant.YouTubeLoopPlaylistPath:
		icon.SetAttr("d", ytLoopOnePath)
		withMedia(page, func(m *dom.Media) { m.SetLoop(true) })
	case ytLoopOnePath:
		icon.SetAttr("d", ytLoopOffPath)
		withMedia(page, func(m *dom.Media) { m.SetLoop(false) })
	default:
		icon.SetAttr("d", constant.YouTubeLoopPlaylistPath)
	}
}

func withMedia(page *dom.Page, fn func(m *dom.Media)) {
	if m, ok := media(page); ok {
		fn(m)
	}
}

func media(page *dom.Page) (*dom.Media, bool) {
	el := page.First("video, audio")
	if el == nil {
		return nil, false
	}
	return el.Media()
}

// syncTime mirrors the media position into the player bar text, as YouTube Music renders it.
func syncTime(page *dom.Page) {
	label := page.First(musicTime)
	if label == nil {
		return
	}

	withMedia(page, func(m *dom.Media) {
		label.SetText(fmt.Sprintf("%s / %s", util.FormatSeconds(m.CurrentTime()), util.FormatSeconds(m.Duration())))
	})
}
