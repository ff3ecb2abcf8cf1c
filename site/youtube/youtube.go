// Package youtube adapts the YouTube watch, shorts and embed players.
package youtube

import (
	"context"
	"fmt"

	"github.com/nowplaying-cli/nowplaying/config"
	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/platform"
	"github.com/nowplaying-cli/nowplaying/selector"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/state"
)

const (
	video         = ".html5-main-video[src]"
	likeButton    = "#segmented-like-button button, #like-button button"
	dislikeButton = "#segmented-dislike-button button, #dislike-button button"
	nextButton    = ".ytp-next-button, #navigation-button-down button"
	prevButton    = ".ytp-prev-button, #navigation-button-up button"
	playlistMenu  = "#playlist-action-menu button"
	shuffleButton = "(#playlist-action-menu button)[1]"
	playlistIcon  = "#playlist-action-menu path"

	shortsContainer = "ytd-shorts"
	watchContainer  = "ytd-watch-flexy"
	watchContentID  = "content"

	// restartThreshold is how far into a video, in seconds, Previous restarts it instead of
	// going to the previous video.
	restartThreshold = 5.0
)

// Snapshot is the periodically refreshed view of the player. Container is nil while the player
// is not on the page, which makes every query fall back to its default.
type Snapshot struct {
	Container  *dom.Element
	VideoID    string
	Title      string
	Artist     string
	Album      string
	PlaylistID string
	Thumbnails []platform.Thumbnail
}

// Adapter implements site.Site for YouTube.
type Adapter struct {
	page     *dom.Page
	bridge   platform.YouTubeBridge
	settings config.Settings
	snapshot *state.Cell[Snapshot]
	poller   *state.Poller[Snapshot]
}

// New returns an adapter for page. Nothing is read until Init or Refresh.
func New(page *dom.Page, bridge platform.YouTubeBridge, settings config.Settings) *Adapter {
	a := &Adapter{
		page:     page,
		bridge:   bridge,
		settings: settings,
		snapshot: state.NewCell(Snapshot{}),
	}
	a.poller = state.NewPoller("youtube", a.snapshot, settings.PollInterval(), a.refresh)
	return a
}

func (a *Adapter) Name() string {
	return constant.YouTube
}

// Init starts the background refresh.
func (a *Adapter) Init(ctx context.Context) {
	a.poller.Start(ctx)
}

// Refresh runs one refresh synchronously. It reports false if a refresh was already running.
func (a *Adapter) Refresh(ctx context.Context) bool {
	return a.poller.Refresh(ctx)
}

// Stop ends the background refresh.
func (a *Adapter) Stop() {
	a.poller.Stop()
}

// Snapshot returns the latest refreshed state.
func (a *Adapter) Snapshot() Snapshot {
	return a.snapshot.Load()
}

// Ready is always true: every query has a usable default.
func (a *Adapter) Ready() bool {
	return true
}

func (a *Adapter) Info() site.Info {
	return info{a}
}

func (a *Adapter) Events() site.Events {
	return events{a}
}

func (a *Adapter) refresh(ctx context.Context) (Snapshot, error) {
	yt, err := a.bridge.YouTubeInfo(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("youtube info: %w", err)
	}

	snap := Snapshot{}
	if yt.ContainerLocalName != "" {
		snap.Container = a.page.First(yt.ContainerLocalName)
	}
	if d := yt.VideoDetails; d != nil {
		snap.VideoID = d.VideoID
		snap.Title = d.Title
		snap.Artist = d.Author
		snap.Thumbnails = d.Thumbnails
	}
	if p := yt.PlaylistDetails; p != nil {
		snap.PlaylistID = p.PlaylistID
		snap.Album = p.Title
	}
	return snap, nil
}

// thumbsScope is where the thumbs button raw of the current video lives. Shorts render a pair per
// short, so the region around the active player is searched first. Some layouts keep the pair
// outside that region, in which case the first match on the page wins.
func (a *Adapter) thumbsScope(snap Snapshot, raw string) *dom.Element {
	if snap.Container != nil && snap.Container.LocalName() == shortsContainer {
		if region := shortsRegion(snap.Container); region != nil && selector.Parse(raw).Element(region).IsPresent() {
			return region
		}
	}
	return a.page.Root()
}

func shortsRegion(container *dom.Element) *dom.Element {
	player := container.First("ytd-player")
	if player == nil {
		return nil
	}

	parent := player.Parent()
	if parent == nil {
		return nil
	}
	return parent.Parent()
}
