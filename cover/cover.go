// Package cover picks the best available thumbnail resolution for a YouTube video id.
package cover

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
	"time"

	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/key"
	"github.com/nowplaying-cli/nowplaying/log"
	"github.com/nowplaying-cli/nowplaying/network"
	"github.com/nowplaying-cli/nowplaying/where"
	"github.com/spf13/viper"
	_ "golang.org/x/image/webp"
)

// Prober resolves the cover URL to use for a video id. It only fails when ctx ends; an
// unreachable or missing high-resolution image resolves to the medium one.
type Prober interface {
	Probe(ctx context.Context, videoID string) (string, error)
}

// Func adapts a function to Prober.
type Func func(ctx context.Context, videoID string) (string, error)

// Probe implements Prober.
func (f Func) Probe(ctx context.Context, videoID string) (string, error) {
	return f(ctx, videoID)
}

// Medium always resolves to the medium thumbnail. It is used when probing is disabled.
var Medium = Func(func(_ context.Context, videoID string) (string, error) {
	return URL(videoID, constant.ThumbnailMedium), nil
})

// FromConfig builds the prober selected by the cover.* settings.
func FromConfig() Prober {
	if !viper.GetBool(key.CoverProbe) {
		return Medium
	}

	var p Prober = NewHTTPProber()
	if viper.GetBool(key.CoverCache) {
		p = NewCached(p, where.Covers(), 7*24*time.Hour)
	}
	return p
}

// URL returns the thumbnail URL of the given layout on the public thumbnail host.
func URL(videoID, layout string) string {
	return fmt.Sprintf("%s/vi/%s/%s", constant.ThumbnailHost, videoID, layout)
}

// VideoID extracts the id from a thumbnail link such as https://i.ytimg.com/vi/ID/hqdefault.jpg.
func VideoID(link string) (string, bool) {
	_, rest, ok := strings.Cut(link, "/vi/")
	if !ok {
		return "", false
	}

	id, _, _ := strings.Cut(rest, "/")
	return id, id != ""
}

// HTTPProber fetches the max-resolution thumbnail and checks its height. The CDN answers a
// missing max-resolution image with a small placeholder, so anything no taller than
// constant.ThumbnailMinEdge counts as missing.
type HTTPProber struct {
	Client *http.Client
	// Host replaces the thumbnail host for requests. Returned URLs always use the public host.
	Host string
}

// NewHTTPProber returns a prober using the shared network client.
func NewHTTPProber() *HTTPProber {
	return &HTTPProber{Client: network.Client, Host: constant.ThumbnailHost}
}

// Probe implements Prober.
func (p *HTTPProber) Probe(ctx context.Context, videoID string) (string, error) {
	height, err := p.height(ctx, videoID)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if err != nil {
		log.Debugf("cover probe for %s failed: %v", videoID, err)
		return URL(videoID, constant.ThumbnailMedium), nil
	}

	if height > constant.ThumbnailMinEdge {
		return URL(videoID, constant.ThumbnailMaxRes), nil
	}
	return URL(videoID, constant.ThumbnailMedium), nil
}

func (p *HTTPProber) height(ctx context.Context, videoID string) (int, error) {
	host := p.Host
	if host == "" {
		host = constant.ThumbnailHost
	}
	client := p.Client
	if client == nil {
		client = network.Client
	}

	link := fmt.Sprintf("%s/vi/%s/%s", strings.TrimSuffix(host, "/"), videoID, constant.ThumbnailMaxRes)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return 0, err
	}

	res, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %s", res.Status)
	}

	cfg, _, err := image.DecodeConfig(res.Body)
	if err != nil {
		return 0, fmt.Errorf("decode thumbnail: %w", err)
	}
	return cfg.Height, nil
}
