package youtube

import (
	"github.com/nowplaying-cli/nowplaying/chapter"
	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/log"
)

// Timeline discovers the chapters of the current video. Chapters only exist on the regular watch
// page and are only used when chapter skipping is enabled.
func (a *Adapter) Timeline() (chapter.Timeline, bool) {
	if !a.settings.SkipChapters {
		return nil, false
	}

	container := a.Snapshot().Container
	if container == nil {
		return nil, false
	}
	if container.LocalName() != watchContainer && container.ID() != watchContentID {
		return nil, false
	}

	t, ok := chapter.Discover(a.page.Root(), a.page.URL())
	if !ok {
		log.Op("chapters", "no chapter list on the page")
	}
	return t, ok
}

// Chapters returns the chapter boundaries around the playhead.
func (a *Adapter) Chapters() (chapter.Nearest, bool) {
	t, ok := a.Timeline()
	if !ok {
		return chapter.Nearest{}, false
	}

	pos := fromVideo(a.Snapshot(), (*dom.Media).CurrentTime, 0)
	return t.Find(pos), true
}
