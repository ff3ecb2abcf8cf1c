package playground

import (
	"encoding/json"
	"fmt"

	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/platform"
)

// Fixture is the host-side state that a saved page does not carry: the URL it was saved from,
// what the platform channels report and the live media element state.
type Fixture struct {
	URL     string                  `json:"url"`
	YouTube *platform.YouTubeInfo   `json:"youtube,omitempty"`
	Session *platform.MediaMetadata `json:"session,omitempty"`
	Volume  *int                    `json:"volume,omitempty" jsonschema:"minimum=0,maximum=100"`
	Media   *MediaState             `json:"media,omitempty"`
	// Rects lays out elements, keyed by CSS selector.
	Rects map[string]dom.Rect `json:"rects,omitempty"`
}

// MediaState is the initial state of the page's first video or audio element. Muted and Loop only
// ever switch on what the markup leaves off.
type MediaState struct {
	CurrentTime float64  `json:"currentTime"`
	Duration    *float64 `json:"duration,omitempty"`
	Paused      *bool    `json:"paused,omitempty"`
	Muted       bool     `json:"muted"`
	Volume      *float64 `json:"volume,omitempty" jsonschema:"minimum=0,maximum=1"`
	Loop        bool     `json:"loop"`
}

// ParseFixture decodes a JSON fixture.
func ParseFixture(data []byte) (Fixture, error) {
	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	return fx, nil
}

func (m *MediaState) apply(media *dom.Media) {
	if m.Duration != nil {
		media.SetDuration(*m.Duration)
	}
	media.SetCurrentTime(m.CurrentTime)
	if m.Paused != nil {
		if *m.Paused {
			media.Pause()
		} else {
			media.Play()
		}
	}
	if m.Muted {
		media.SetMuted(true)
	}
	if m.Volume != nil {
		media.SetVolume(*m.Volume)
	}
	if m.Loop {
		media.SetLoop(true)
	}
}
