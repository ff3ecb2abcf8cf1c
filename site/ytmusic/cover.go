package ytmusic

import (
	"strings"

	"github.com/nowplaying-cli/nowplaying/cover"
	"github.com/nowplaying-cli/nowplaying/log"
	"github.com/nowplaying-cli/nowplaying/platform"
	"github.com/nowplaying-cli/nowplaying/util"
)

// coverLink returns the biggest media-session artwork as a plain thumbnail link.
func (a *Adapter) coverLink() string {
	md := a.session.Metadata()
	if md == nil {
		return ""
	}

	src, ok := platform.BiggestArtwork(md.Artwork)
	if !ok {
		return ""
	}
	return strings.Replace(util.TrimQuery(src), "vi_webp", "vi", 1)
}

// resolveCover returns the probed cover of the current video once known. Until then it returns
// the media-session link and makes sure a probe for the video is running.
func (a *Adapter) resolveCover() string {
	link := a.coverLink()
	if link == "" {
		return ""
	}

	id, ok := cover.VideoID(link)
	if !ok {
		return link
	}

	if cur := a.cover.Load(); cur.Resolved == id {
		return cur.URL
	}

	a.request(id)
	return link
}

func (a *Adapter) request(id string) {
	requested, changed := a.cover.Update(func(old Cover) (Cover, bool) {
		if old.Requested == id {
			return old, false
		}
		return Cover{
			Requested:  id,
			Generation: old.Generation + 1,
			Resolved:   old.Resolved,
			URL:        old.URL,
		}, true
	})
	if !changed {
		return
	}

	ctx := a.background()
	a.probes.Add(1)
	go func() {
		defer a.probes.Done()

		url, err := a.prober.Probe(ctx, id)
		if err != nil {
			log.Debugf("cover probe for %s abandoned: %v", id, err)
			// Forget the request so the next read for this video asks again.
			a.cover.Update(func(old Cover) (Cover, bool) {
				if old.Generation != requested.Generation {
					return old, false
				}
				old.Requested = ""
				return old, true
			})
			return
		}

		_, applied := a.cover.Update(func(old Cover) (Cover, bool) {
			if old.Generation != requested.Generation {
				return old, false
			}
			old.Resolved = id
			old.URL = url
			return old, true
		})
		if !applied {
			log.Debugf("cover probe for %s superseded", id)
		}
	}()
}
