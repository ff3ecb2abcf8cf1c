// Package platform describes the host-side channels the site adapters read asynchronously: the
// YouTube player info, the YouTube Music volume and the browser media session.
package platform

import (
	"context"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Thumbnail is one entry of a video's thumbnail list.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// VideoDetails is the subset of the YouTube player response the adapter uses.
type VideoDetails struct {
	VideoID    string      `json:"videoId"`
	Title      string      `json:"title"`
	Author     string      `json:"author"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

// PlaylistDetails describes the playlist the current video plays from.
type PlaylistDetails struct {
	PlaylistID string `json:"playlistId"`
	Title      string `json:"title"`
}

// YouTubeInfo is what the YouTube player reports about the current page.
// ContainerLocalName names the element that hosts the active player, e.g. ytd-watch-flexy or
// ytd-shorts.
type YouTubeInfo struct {
	ContainerLocalName string           `json:"containerLocalName"`
	VideoDetails       *VideoDetails    `json:"videoDetails,omitempty"`
	PlaylistDetails    *PlaylistDetails `json:"playlistDetails,omitempty"`
}

// Artwork is one media-session artwork entry. Sizes uses the "WxH" form, possibly several
// separated by spaces.
type Artwork struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes,omitempty"`
	Type  string `json:"type,omitempty"`
}

// MediaMetadata mirrors the media-session metadata object.
type MediaMetadata struct {
	Title   string    `json:"title"`
	Artist  string    `json:"artist"`
	Album   string    `json:"album"`
	Artwork []Artwork `json:"artwork"`
}

// YouTubeBridge fetches the YouTube player info. The call may be slow; adapters only make it from
// their poller.
type YouTubeBridge interface {
	YouTubeInfo(ctx context.Context) (YouTubeInfo, error)
}

// MusicBridge reads and writes the YouTube Music player volume, 0 to 100. The true volume is
// only reachable asynchronously, so Volume may report None while the player is loading.
type MusicBridge interface {
	Volume(ctx context.Context) (mo.Option[int], error)
	SetVolume(ctx context.Context, volume int) error
}

// MediaSession exposes the current media-session metadata, nil when none is set.
type MediaSession interface {
	Metadata() *MediaMetadata
}

// BiggestThumbnail returns the URL of the thumbnail with the largest area. The first one wins ties.
func BiggestThumbnail(thumbs []Thumbnail) (string, bool) {
	thumbs = lo.Filter(thumbs, func(t Thumbnail, _ int) bool { return t.URL != "" })
	if len(thumbs) == 0 {
		return "", false
	}

	best := lo.Reduce(thumbs, func(best Thumbnail, t Thumbnail, _ int) Thumbnail {
		if t.Width*t.Height > best.Width*best.Height {
			return t
		}
		return best
	}, thumbs[0])
	return best.URL, true
}

// BiggestArtwork returns the source of the artwork with the largest declared size. Entries without
// a parsable size count as zero, so the first entry wins when no sizes are declared.
func BiggestArtwork(art []Artwork) (string, bool) {
	art = lo.Filter(art, func(a Artwork, _ int) bool { return a.Src != "" })
	if len(art) == 0 {
		return "", false
	}

	best, bestArea := art[0], area(art[0].Sizes)
	for _, a := range art[1:] {
		if n := area(a.Sizes); n > bestArea {
			best, bestArea = a, n
		}
	}
	return best.Src, true
}

func area(sizes string) int {
	return lo.Max(lo.Map(strings.Fields(sizes), func(size string, _ int) int {
		w, h, ok := strings.Cut(strings.ToLower(size), "x")
		if !ok {
			return 0
		}

		width, err := strconv.Atoi(w)
		if err != nil {
			return 0
		}
		height, err := strconv.Atoi(h)
		if err != nil {
			return 0
		}
		return width * height
	}))
}
