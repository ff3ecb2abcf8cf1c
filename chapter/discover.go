package chapter

import (
	"net/url"
	"strconv"

	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

const (
	descriptionPanel = `ytd-engagement-panel-section-list-renderer[target-id="engagement-panel-macro-markers-description-chapters"]`
	autoPanel        = `ytd-engagement-panel-section-list-renderer[target-id="engagement-panel-macro-markers-auto-chapters"]`
	panelLinks       = `ytd-macro-markers-list-item-renderer > a`
	comments         = `ytd-comment-thread-renderer > ytd-comment-renderer#comment`
	commentBody      = `#content-text`
)

// Source is one place chapter boundaries can be read from.
type Source struct {
	Name string
	Find func(root *dom.Element, current *url.URL) (Timeline, bool)
}

// Sources returns the chapter sources from most to least reliable: chapters the uploader wrote in
// the description, a timestamp list in a comment, then the automatically generated chapters.
func Sources() []Source {
	return []Source{
		{Name: "description", Find: func(root *dom.Element, _ *url.URL) (Timeline, bool) {
			return markerList(root.First(descriptionPanel))
		}},
		{Name: "comments", Find: commentList},
		{Name: "auto", Find: func(root *dom.Element, _ *url.URL) (Timeline, bool) {
			return markerList(root.First(autoPanel))
		}},
	}
}

// Discover returns the timeline of the first source that yields one. The markup behind every
// source comes and goes as panels open and close, so nothing is cached between calls.
func Discover(root *dom.Element, current *url.URL) (Timeline, bool) {
	if root == nil {
		return nil, false
	}

	for _, src := range Sources() {
		if t, ok := src.Find(root, current); ok {
			return t, true
		}
	}
	return nil, false
}

func markerList(panel *dom.Element) (Timeline, bool) {
	if panel == nil {
		return nil, false
	}

	times := lo.FilterMap(panel.Find(panelLinks), func(a *dom.Element, _ int) (int, bool) {
		link, err := url.Parse(a.Href())
		if err != nil || a.Href() == "" {
			return 0, false
		}
		return timeParam(link)
	})

	t := Normalize(times)
	return t, t.Valid()
}

// commentList picks, among the comments listing enough timestamps into the current video, the
// one with the fewest. A short list is more likely a deliberate chapter list than a long run of
// reactions. Ties go to the comment that appears first.
func commentList(root *dom.Element, current *url.URL) (Timeline, bool) {
	if current == nil {
		return nil, false
	}

	lists := lo.FilterMap(root.Find(comments), func(comment *dom.Element, _ int) (Timeline, bool) {
		body := comment.First(commentBody)
		if body == nil {
			return nil, false
		}

		times := lo.FilterMap(body.Children(), func(el *dom.Element, _ int) (int, bool) {
			return linkSeconds(el, current)
		})
		t := Normalize(times)
		return t, t.Valid()
	})

	if len(lists) == 0 {
		return nil, false
	}

	slices.SortStableFunc(lists, func(a, b Timeline) int {
		return len(a) - len(b)
	})
	return lists[0], true
}

// linkSeconds reads the timestamp of a link into the current video. Links to another video or
// page are rejected.
func linkSeconds(el *dom.Element, current *url.URL) (int, bool) {
	href := el.Href()
	if href == "" {
		return 0, false
	}

	link, err := url.Parse(href)
	if err != nil {
		return 0, false
	}

	if link.Path != current.Path || link.Query().Get("v") != current.Query().Get("v") {
		return 0, false
	}
	return timeParam(link)
}

// timeParam parses the leading integer of the t parameter, so "90s" and "90" both read as 90.
func timeParam(link *url.URL) (int, bool) {
	if !link.Query().Has("t") {
		return 0, false
	}
	return leadingInt(link.Query().Get("t"))
}

func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
