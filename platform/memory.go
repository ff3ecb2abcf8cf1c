package platform

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/samber/mo"
)

// ErrUnavailable is returned by Memory when the host is configured as unreachable.
var ErrUnavailable = errors.New("platform: host unavailable")

// Memory is an in-process host platform. It serves fixtures to the adapters and lets tests
// control what the asynchronous channels report and how long they take.
type Memory struct {
	mu       sync.RWMutex
	youtube  YouTubeInfo
	volume   mo.Option[int]
	metadata *MediaMetadata
	latency  time.Duration
	down     bool

	// OnSetVolume, when set, runs after SetVolume stores a new volume. The playground uses it to
	// mirror the player volume onto the media element the way the real player does.
	OnSetVolume func(volume int)
}

// NewMemory returns a reachable host with no video, no session and an unknown volume.
func NewMemory() *Memory {
	return &Memory{volume: mo.None[int]()}
}

// SetYouTubeInfo replaces what YouTubeInfo reports.
func (m *Memory) SetYouTubeInfo(info YouTubeInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.youtube = info
}

// SetMetadata replaces the media-session metadata. nil clears it.
func (m *Memory) SetMetadata(md *MediaMetadata) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadata = md
}

// SetLatency delays every asynchronous call by d.
func (m *Memory) SetLatency(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latency = d
}

// SetAvailable toggles whether asynchronous calls fail with ErrUnavailable.
func (m *Memory) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.down = !available
}

// YouTubeInfo implements YouTubeBridge.
func (m *Memory) YouTubeInfo(ctx context.Context) (YouTubeInfo, error) {
	if err := m.wait(ctx); err != nil {
		return YouTubeInfo{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.youtube, nil
}

// Volume implements MusicBridge.
func (m *Memory) Volume(ctx context.Context) (mo.Option[int], error) {
	if err := m.wait(ctx); err != nil {
		return mo.None[int](), err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume, nil
}

// SetVolume implements MusicBridge. The write itself is immediate.
func (m *Memory) SetVolume(_ context.Context, volume int) error {
	m.mu.Lock()
	if m.down {
		m.mu.Unlock()
		return ErrUnavailable
	}
	m.volume = mo.Some(volume)
	hook := m.OnSetVolume
	m.mu.Unlock()

	if hook != nil {
		hook(volume)
	}
	return nil
}

// Metadata implements MediaSession.
func (m *Memory) Metadata() *MediaMetadata {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metadata
}

func (m *Memory) wait(ctx context.Context) error {
	m.mu.RLock()
	latency, down := m.latency, m.down
	m.mu.RUnlock()

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if down {
		return ErrUnavailable
	}
	return nil
}
