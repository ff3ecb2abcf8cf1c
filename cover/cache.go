package cover

import (
	"context"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/nowplaying-cli/nowplaying/filesystem"
	"github.com/nowplaying-cli/nowplaying/log"
)

// Cached remembers probe results on disk, keyed by video id, so a video already seen skips the
// network round trip.
type Cached struct {
	next     Prober
	internal *gache.Cache[map[string]string]
	mu       sync.Mutex
}

// NewCached wraps next with a cache stored at path. Entries expire together after lifetime.
func NewCached(next Prober, path string, lifetime time.Duration) *Cached {
	return &Cached{
		next: next,
		internal: gache.New[map[string]string](
			&gache.Options{
				Path:       path,
				Lifetime:   lifetime,
				FileSystem: &filesystem.GacheFs{},
			},
		),
	}
}

// Probe implements Prober.
func (c *Cached) Probe(ctx context.Context, videoID string) (string, error) {
	if link, ok := c.get(videoID); ok {
		return link, nil
	}

	link, err := c.next.Probe(ctx, videoID)
	if err != nil {
		return "", err
	}

	if err := c.set(videoID, link); err != nil {
		log.Warnf("failed to cache cover for %s: %v", videoID, err)
	}
	return link, nil
}

func (c *Cached) get(videoID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return "", false
	}

	link, ok := data[videoID]
	return link, ok
}

func (c *Cached) set(videoID, link string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		data = make(map[string]string)
	}
	data[videoID] = link
	return c.internal.Set(data)
}
