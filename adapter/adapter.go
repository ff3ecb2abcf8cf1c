// Package adapter picks and builds the site adapter for a page.
package adapter

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/nowplaying-cli/nowplaying/config"
	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/cover"
	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/platform"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/site/youtube"
	"github.com/nowplaying-cli/nowplaying/site/ytmusic"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Kind identifies a supported site.
type Kind string

const (
	YouTube      Kind = "youtube"
	YouTubeMusic Kind = "ytmusic"
)

// Kinds lists every supported site.
func Kinds() []Kind {
	return []Kind{YouTube, YouTubeMusic}
}

// Player returns the player name the site's adapter reports.
func (k Kind) Player() string {
	switch k {
	case YouTube:
		return constant.YouTube
	case YouTubeMusic:
		return constant.YouTubeMusic
	default:
		return ""
	}
}

func (k Kind) String() string {
	return string(k)
}

// ErrUnsupported is returned when no adapter exists for a page or kind.
var ErrUnsupported = errors.New("unsupported site")

var hosts = map[string]Kind{
	"music.youtube.com": YouTubeMusic,
	"youtube.com":       YouTube,
	"www.youtube.com":   YouTube,
	"m.youtube.com":     YouTube,
}

// Detect maps a page URL to the site it belongs to.
func Detect(u *url.URL) (Kind, bool) {
	if u == nil {
		return "", false
	}

	kind, ok := hosts[strings.ToLower(u.Hostname())]
	return kind, ok
}

// Lookup resolves a user-typed site name. Exact kind or player names win; otherwise the
// closest fuzzy match does.
func Lookup(name string) (Kind, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}

	type candidate struct {
		kind  Kind
		label string
	}

	candidates := lo.FlatMap(Kinds(), func(k Kind, _ int) []candidate {
		return []candidate{{k, k.String()}, {k, k.Player()}}
	})

	if c, ok := lo.Find(candidates, func(c candidate) bool {
		return strings.EqualFold(c.label, name)
	}); ok {
		return c.kind, true
	}

	labels := lo.Map(candidates, func(c candidate, _ int) string { return c.label })
	ranks := fuzzy.RankFindNormalizedFold(name, labels)
	if len(ranks) == 0 {
		return "", false
	}

	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return a.OriginalIndex - b.OriginalIndex
	})
	return candidates[ranks[0].OriginalIndex].kind, true
}

// Deps are the host-provided collaborators an adapter is built from. Only the ones the chosen
// site needs have to be set; a nil Prober falls back to cover.Medium.
type Deps struct {
	Page     *dom.Page
	YouTube  platform.YouTubeBridge
	Music    platform.MusicBridge
	Session  platform.MediaSession
	Prober   cover.Prober
	Settings config.Settings
}

// New builds the adapter for kind.
func New(kind Kind, deps Deps) (site.Site, error) {
	if deps.Page == nil {
		return nil, errors.New("adapter: no page")
	}

	switch kind {
	case YouTube:
		if deps.YouTube == nil {
			return nil, fmt.Errorf("%s: no player bridge", kind)
		}
		return youtube.New(deps.Page, deps.YouTube, deps.Settings), nil
	case YouTubeMusic:
		if deps.Music == nil || deps.Session == nil {
			return nil, fmt.Errorf("%s: no player bridge or media session", kind)
		}
		prober := deps.Prober
		if prober == nil {
			prober = cover.Medium
		}
		return ytmusic.New(deps.Page, deps.Music, deps.Session, prober, deps.Settings), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, kind)
	}
}

// ForPage detects the site from the page URL and builds its adapter.
func ForPage(deps Deps) (site.Site, error) {
	if deps.Page == nil {
		return nil, errors.New("adapter: no page")
	}

	kind, ok := Detect(deps.Page.URL())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, deps.Page.URL())
	}
	return New(kind, deps)
}
