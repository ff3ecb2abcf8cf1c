// Package playground loads a saved player page into a live dom.Page backed by an in-memory host,
// so the site adapters can be driven outside a browser.
package playground

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/filesystem"
	"github.com/nowplaying-cli/nowplaying/log"
	"github.com/nowplaying-cli/nowplaying/platform"
	"github.com/nowplaying-cli/nowplaying/where"
	"github.com/samber/lo"
)

// defaultRects lays out elements the behaviours need geometry for, unless the fixture does.
var defaultRects = map[string]dom.Rect{
	musicProgress: {Left: 0, Top: 0, Width: 1000, Height: 4},
}

// Playground is a loaded page and the host it is bound to.
type Playground struct {
	Page *dom.Page
	Host *platform.Memory
}

// New builds a playground from an HTML document and its fixture.
func New(document string, fx Fixture) (*Playground, error) {
	page, err := dom.ParseString(document, fx.URL)
	if err != nil {
		return nil, err
	}

	host := platform.NewMemory()
	if fx.YouTube != nil {
		host.SetYouTubeInfo(*fx.YouTube)
	}
	if fx.Session != nil {
		host.SetMetadata(fx.Session)
	}

	p := &Playground{Page: page, Host: host}
	if fx.Media != nil {
		if m, ok := media(page); ok {
			fx.Media.apply(m)
		}
	}
	host.OnSetVolume = func(volume int) {
		withMedia(page, func(m *dom.Media) { m.SetVolume(float64(volume) / 100) })
	}
	if fx.Volume != nil {
		lo.Must0(host.SetVolume(context.Background(), *fx.Volume))
	}

	for css, r := range defaultRects {
		page.SetRect(page.First(css), r)
	}
	for css, r := range fx.Rects {
		page.SetRect(page.First(css), r)
	}

	install(page)
	syncTime(page)
	return p, nil
}

// Load reads a page and its fixture through the application filesystem. Relative paths that do
// not exist are looked up in the fixtures directory, then among the built-in samples. An empty
// fixturePath means the page path with a .json extension; a missing fixture is an empty one.
func Load(pagePath, fixturePath string) (*Playground, error) {
	pagePath = locate(pagePath)
	if exists, _ := filesystem.API().Exists(pagePath); !exists && fixturePath == "" && lo.Contains(Samples(), pagePath) {
		return LoadSample(pagePath)
	}

	document, err := filesystem.API().ReadFile(pagePath)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}

	explicit := fixturePath != ""
	if !explicit {
		fixturePath = strings.TrimSuffix(pagePath, filepath.Ext(pagePath)) + ".json"
	}
	fixturePath = locate(fixturePath)

	var fx Fixture
	data, err := filesystem.API().ReadFile(fixturePath)
	switch {
	case err == nil:
		if fx, err = ParseFixture(data); err != nil {
			return nil, err
		}
	case explicit || !os.IsNotExist(err):
		return nil, fmt.Errorf("read fixture: %w", err)
	default:
		log.Debugf("no fixture next to %s", pagePath)
	}

	return New(string(document), fx)
}

func locate(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if exists, _ := filesystem.API().Exists(path); exists {
		return path
	}

	candidate := filepath.Join(where.Fixtures(), path)
	if exists, _ := filesystem.API().Exists(candidate); exists {
		return candidate
	}
	return path
}

// Media returns the page's first video or audio element state.
func (p *Playground) Media() (*dom.Media, bool) {
	return media(p.Page)
}

// Navigate changes the page URL, as single-page navigation does.
func (p *Playground) Navigate(rawURL string) error {
	return p.Page.SetURL(rawURL)
}

// Advance plays the media forward by d when it is playing. Reaching the end either wraps, for a
// looping element, or pauses.
func (p *Playground) Advance(d time.Duration) {
	withMedia(p.Page, func(m *dom.Media) {
		if m.Paused() {
			return
		}

		next := m.CurrentTime() + d.Seconds()
		if dur := m.Duration(); dur > 0 && next >= dur {
			if m.Loop() {
				next = 0
			} else {
				next = dur
				m.Pause()
			}
		}
		m.SetCurrentTime(next)
	})
	syncTime(p.Page)
}
