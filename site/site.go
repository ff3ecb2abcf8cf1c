// Package site defines the uniform playback contract every supported web player is adapted to.
package site

import (
	"context"

	"github.com/nowplaying-cli/nowplaying/chapter"
)

// Site is one supported web player.
type Site interface {
	// Name returns the player name, as reported by Info().Player().
	Name() string

	// Init starts refreshing the adapter's cached state. Calling it again has no effect.
	Init(ctx context.Context)

	// Ready reports whether Info and Events can be trusted yet.
	Ready() bool

	// Info returns the playback queries.
	Info() Info

	// Events returns the playback controls.
	Events() Events
}

// Info holds synchronous, side-effect free playback queries. Each one falls back to a default
// when the page does not expose the value right now.
type Info interface {
	// Player returns the player name.
	Player() string

	// State returns the playback state, Paused when unknown.
	State() StateMode

	// Title returns the track title, empty when unknown.
	Title() string

	// Artist returns the track artist, empty when unknown.
	Artist() string

	// Album returns the album or playlist title, empty when unknown.
	Album() string

	// Cover returns an HTTPS cover-art URL without a query string, empty when unknown.
	Cover() string

	// Duration returns the track length formatted as m:ss, 0:00 when unknown.
	Duration() string

	// Position returns the playback position formatted as m:ss, 0:00 when unknown.
	Position() string

	// Volume returns the volume from 0 to 100. Muted players report 0.
	Volume() int

	// Rating returns the thumbs state on the five-point scale.
	Rating() Rating

	// Repeat returns the repeat mode, RepeatNone when unknown.
	Repeat() RepeatMode

	// Shuffle reports whether shuffle is on.
	Shuffle() bool
}

// Events holds the playback controls. A control whose target is not on the page does nothing.
type Events interface {
	TogglePlaying()
	Next()
	Previous()

	// SetVolume sets the volume from 0 to 100 and unmutes.
	SetVolume(volume int)

	ToggleRepeat()
	ToggleShuffle()
	ToggleThumbsUp()
	ToggleThumbsDown()

	// SetRating presses like or dislike to reach rating. See LikeDislike.
	SetRating(rating int)
}

// SecondsSeeking is implemented by Events that can jump to an absolute position.
type SecondsSeeking interface {
	SetPositionSeconds(seconds float64)
}

// PercentageSeeking is implemented by Events that can only jump to a relative position.
type PercentageSeeking interface {
	// SetPositionPercentage takes a fraction of the track length from 0 to 1.
	SetPositionPercentage(fraction float64)
}

// SecondsSeeker returns the absolute seek control of ev, if it has one.
func SecondsSeeker(ev Events) (SecondsSeeking, bool) {
	s, ok := ev.(SecondsSeeking)
	return s, ok
}

// PercentageSeeker returns the relative seek control of ev, if it has one.
func PercentageSeeker(ev Events) (PercentageSeeking, bool) {
	s, ok := ev.(PercentageSeeking)
	return s, ok
}

// Stopper is implemented by sites whose background refresh can be stopped.
type Stopper interface {
	Stop()
}

// Stop stops s's background refresh if it has one.
func Stop(s Site) {
	if stopper, ok := s.(Stopper); ok {
		stopper.Stop()
	}
}

// Refresher is implemented by sites that can refresh their cached state on demand.
type Refresher interface {
	Refresh(ctx context.Context) bool
}

// Refresh runs one synchronous refresh of s if it supports it. It reports whether a refresh ran.
func Refresh(ctx context.Context, s Site) bool {
	if r, ok := s.(Refresher); ok {
		return r.Refresh(ctx)
	}
	return false
}

// Chaptered is implemented by sites that navigate by chapter.
type Chaptered interface {
	Timeline() (chapter.Timeline, bool)
	Chapters() (chapter.Nearest, bool)
}

// Chapters returns the chapter navigation of s, if it has one.
func Chapters(s Site) (Chaptered, bool) {
	c, ok := s.(Chaptered)
	return c, ok
}
