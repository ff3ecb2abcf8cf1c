package selector

import (
	"errors"

	"github.com/nowplaying-cli/nowplaying/dom"
)

// ErrNotMedia is returned by Media for elements that are not video or audio.
var ErrNotMedia = errors.New("element is not a media element")

// Media extracts the playback state of a video or audio element.
func Media(el *dom.Element) (*dom.Media, error) {
	m, ok := el.Media()
	if !ok {
		return nil, ErrNotMedia
	}
	return m, nil
}

// Pressed reports whether a toggle button is on, per its aria-pressed attribute.
func Pressed(el *dom.Element) (bool, error) {
	v, _ := el.Attr("aria-pressed")
	return v == "true", nil
}

// Text extracts the collapsed inner text.
func Text(el *dom.Element) (string, error) {
	return el.Text(), nil
}

// Attr returns an extractor for the named attribute. A missing attribute is empty, hence absent.
func Attr(name string) Extractor[string] {
	return func(el *dom.Element) (string, error) {
		v, _ := el.Attr(name)
		return v, nil
	}
}

// Click is the action that clicks the resolved element.
func Click(el *dom.Element) {
	el.Click()
}
