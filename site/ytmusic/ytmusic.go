// Package ytmusic adapts the YouTube Music web player.
package ytmusic

import (
	"context"
	"fmt"
	"sync"

	"github.com/nowplaying-cli/nowplaying/config"
	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/cover"
	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/platform"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/state"
	"github.com/samber/mo"
)

const (
	video         = "video"
	timeInfo      = ".time-info.ytmusic-player-bar"
	likeButton    = "(.middle-controls-buttons yt-button-shape)[1]"
	dislikeButton = ".middle-controls-buttons yt-button-shape"
	playerBar     = "ytmusic-player-bar"
	playPause     = "#play-pause-button"
	nextButton    = ".next-button"
	prevButton    = ".previous-button"
	progressBar   = "#progress-bar tp-yt-paper-progress"
	volumeButton  = ".volume"
	repeatButton  = ".repeat"
	shuffleButton = ".shuffle"
	thumbsUp      = "(.middle-controls-buttons button)[1]"
	thumbsDown    = ".middle-controls-buttons button"
)

// Snapshot is the periodically refreshed player state. The player volume is only reachable
// asynchronously, so it is cached here; None means it is not known yet.
type Snapshot struct {
	Volume mo.Option[int]
}

// Cover tracks the resolution probe of the current video's thumbnail. Generation increases with
// every new request, and a probe result only lands if no newer request was made since.
type Cover struct {
	Requested  string
	Generation uint64
	Resolved   string
	URL        string
}

// Adapter implements site.Site for YouTube Music.
type Adapter struct {
	page    *dom.Page
	bridge  platform.MusicBridge
	session platform.MediaSession
	prober  cover.Prober

	snapshot *state.Cell[Snapshot]
	poller   *state.Poller[Snapshot]
	cover    *state.Cell[Cover]
	probes   sync.WaitGroup

	mu  sync.Mutex
	ctx context.Context
}

// New returns an adapter for page. Nothing is polled until Init or Refresh.
func New(page *dom.Page, bridge platform.MusicBridge, session platform.MediaSession, prober cover.Prober, settings config.Settings) *Adapter {
	a := &Adapter{
		page:     page,
		bridge:   bridge,
		session:  session,
		prober:   prober,
		snapshot: state.NewCell(Snapshot{Volume: mo.None[int]()}),
		cover:    state.NewCell(Cover{}),
		ctx:      context.Background(),
	}
	a.poller = state.NewPoller("ytmusic", a.snapshot, settings.PollInterval(), a.refresh)
	return a
}

func (a *Adapter) Name() string {
	return constant.YouTubeMusic
}

// Init starts the background refresh. ctx also bounds cover probes and volume writes.
func (a *Adapter) Init(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	a.poller.Start(ctx)
}

// Refresh runs one refresh synchronously. It reports false if a refresh was already running.
func (a *Adapter) Refresh(ctx context.Context) bool {
	return a.poller.Refresh(ctx)
}

// Stop ends the background refresh and waits for outstanding cover probes.
func (a *Adapter) Stop() {
	a.poller.Stop()
	a.probes.Wait()
}

// Wait blocks until outstanding cover probes have finished.
func (a *Adapter) Wait() {
	a.probes.Wait()
}

// Snapshot returns the latest refreshed state.
func (a *Adapter) Snapshot() Snapshot {
	return a.snapshot.Load()
}

// Ready requires media-session metadata and a video element.
func (a *Adapter) Ready() bool {
	return a.session.Metadata() != nil && a.page.First(video) != nil
}

func (a *Adapter) Info() site.Info {
	return info{a}
}

func (a *Adapter) Events() site.Events {
	return events{a}
}

func (a *Adapter) background() context.Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ctx
}

func (a *Adapter) refresh(ctx context.Context) (Snapshot, error) {
	volume, err := a.bridge.Volume(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("youtube music volume: %w", err)
	}
	return Snapshot{Volume: volume}, nil
}

// cachedVolume is the last known volume, 100 until the player reports one.
func (a *Adapter) cachedVolume() int {
	return a.Snapshot().Volume.OrElse(100)
}
