package dom

import (
	"math"
	"sync"
)

// Media is the live state of a video or audio element.
type Media struct {
	mu          sync.RWMutex
	currentTime float64
	duration    float64
	paused      bool
	muted       bool
	volume      float64
	loop        bool
}

func newMedia(muted, loop, autoplay bool) *Media {
	return &Media{
		duration: math.NaN(),
		paused:   !autoplay,
		muted:    muted,
		volume:   1,
		loop:     loop,
	}
}

func (m *Media) CurrentTime() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetCurrentTime seeks, clamping to [0, duration] when the duration is known.
func (m *Media) SetCurrentTime(t float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if !math.IsNaN(m.duration) && t > m.duration {
		t = m.duration
	}
	m.currentTime = t
}

// Duration is NaN until metadata is known, like HTMLMediaElement.duration.
func (m *Media) Duration() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.duration
}

func (m *Media) SetDuration(d float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Media) Paused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paused
}

func (m *Media) Play() {
	m.mu.Lock()
	m.paused = false
	m.mu.Unlock()
}

func (m *Media) Pause() {
	m.mu.Lock()
	m.paused = true
	m.mu.Unlock()
}

func (m *Media) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

func (m *Media) SetMuted(muted bool) {
	m.mu.Lock()
	m.muted = muted
	m.mu.Unlock()
}

// Volume is in [0, 1].
func (m *Media) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

func (m *Media) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = math.Max(0, math.Min(1, v))
}

func (m *Media) Loop() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loop
}

func (m *Media) SetLoop(loop bool) {
	m.mu.Lock()
	m.loop = loop
	m.mu.Unlock()
}
