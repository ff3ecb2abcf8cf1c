package inline

import (
	"encoding/json"
	"path"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/samber/mo"
)

type Info struct {
	Player   string `json:"player"`
	State    string `json:"state" jsonschema:"enum=STOPPED,enum=PLAYING,enum=PAUSED"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Cover    string `json:"cover" jsonschema:"description=HTTPS cover-art URL without a query string."`
	Duration string `json:"duration" jsonschema:"description=Track length as m:ss or h:mm:ss."`
	Position string `json:"position" jsonschema:"description=Playback position as m:ss or h:mm:ss."`
	Volume   int    `json:"volume" jsonschema:"minimum=0,maximum=100"`
	Rating   int    `json:"rating" jsonschema:"enum=0,enum=1,enum=5,description=Five-point scale: 0 unrated / 1 disliked / 5 liked."`
	Repeat   string `json:"repeat" jsonschema:"enum=NONE,enum=ALL,enum=ONE"`
	Shuffle  bool   `json:"shuffle"`
}

type Chapters struct {
	// Timeline holds the chapter start times in seconds.
	Timeline []int `json:"timeline"`
	Previous *int  `json:"previous,omitempty" jsonschema:"description=Boundary Previous jumps to."`
	Next     *int  `json:"next,omitempty" jsonschema:"description=Boundary Next jumps to."`
}

type Output struct {
	URL      string    `json:"url"`
	Ready    bool      `json:"ready"`
	Actions  []string  `json:"actions,omitempty"`
	Info     Info      `json:"info"`
	Chapters *Chapters `json:"chapters,omitempty"`
}

// Capture reads every field of info once.
func Capture(info site.Info) Info {
	return Info{
		Player:   info.Player(),
		State:    info.State().String(),
		Title:    info.Title(),
		Artist:   info.Artist(),
		Album:    info.Album(),
		Cover:    info.Cover(),
		Duration: info.Duration(),
		Position: info.Position(),
		Volume:   info.Volume(),
		Rating:   int(info.Rating()),
		Repeat:   info.Repeat().String(),
		Shuffle:  info.Shuffle(),
	}
}

// CaptureChapters returns the chapter navigation of s, nil when it has none.
func CaptureChapters(s site.Site) *Chapters {
	c, ok := site.Chapters(s)
	if !ok {
		return nil
	}

	timeline, ok := c.Timeline()
	if !ok {
		return nil
	}

	out := &Chapters{Timeline: timeline}
	if nearest, ok := c.Chapters(); ok {
		out.Previous = pointer(nearest.Previous)
		out.Next = pointer(nearest.Next)
	}
	return out
}

func pointer(o mo.Option[int]) *int {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

func asJson(output *Output) ([]byte, error) {
	return json.Marshal(output)
}

// Schema returns the JSON schema of v, e.g. &Output{}.
func Schema(v any) *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "info", "output", "fixture":
			return path.Base(t.PkgPath()) + "." + name
		}
		return name
	}
	return reflector.Reflect(v)
}
