package inline

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/nowplaying-cli/nowplaying/site"
)

// Action is one playback control applied before the output is taken.
type Action struct {
	Name  string
	Value string
	apply func(s site.Site) error
}

// Apply runs the action against s.
func (a Action) Apply(s site.Site) error {
	return a.apply(s)
}

func (a Action) String() string {
	if a.Value == "" {
		return a.Name
	}
	return a.Name + "=" + a.Value
}

type Options struct {
	Out      io.Writer
	Site     site.Site
	URL      string
	Json     bool
	Chapters bool
	Actions  []Action
}

func simple(fn func(site.Events)) func(string) (func(site.Site) error, error) {
	return func(string) (func(site.Site) error, error) {
		return func(s site.Site) error {
			fn(s.Events())
			return nil
		}, nil
	}
}

func number(fn func(site.Events, int)) func(string) (func(site.Site) error, error) {
	return func(value string) (func(site.Site) error, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %q", value)
		}
		return func(s site.Site) error {
			fn(s.Events(), n)
			return nil
		}, nil
	}
}

var parsers = map[string]func(string) (func(site.Site) error, error){
	"play-pause":  simple(site.Events.TogglePlaying),
	"next":        simple(site.Events.Next),
	"previous":    simple(site.Events.Previous),
	"repeat":      simple(site.Events.ToggleRepeat),
	"shuffle":     simple(site.Events.ToggleShuffle),
	"thumbs-up":   simple(site.Events.ToggleThumbsUp),
	"thumbs-down": simple(site.Events.ToggleThumbsDown),
	"volume":      number(site.Events.SetVolume),
	"rating":      number(site.Events.SetRating),
	"seek":        parseSeek,
}

// ActionNames lists every action ParseAction understands.
func ActionNames() []string {
	names := make([]string, 0, len(parsers))
	for name := range parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseAction parses "name" or "name=value", e.g. "next", "volume=40", "seek=90" or "seek=25%".
func ParseAction(description string) (Action, error) {
	name, value, _ := strings.Cut(strings.TrimSpace(description), "=")
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)

	parse, ok := parsers[name]
	if !ok {
		return Action{}, fmt.Errorf("unknown action: %s", name)
	}

	apply, err := parse(value)
	if err != nil {
		return Action{}, fmt.Errorf("%s: %w", name, err)
	}
	return Action{Name: name, Value: value, apply: apply}, nil
}

// parseSeek accepts seconds for players that seek by time and a percentage for players that
// seek by fraction of the track.
func parseSeek(value string) (func(site.Site) error, error) {
	if percent, ok := strings.CutSuffix(value, "%"); ok {
		p, err := strconv.ParseFloat(percent, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage: %q", value)
		}
		return func(s site.Site) error {
			seeker, ok := site.PercentageSeeker(s.Events())
			if !ok {
				return fmt.Errorf("%s seeks by seconds, not percentage", s.Name())
			}
			seeker.SetPositionPercentage(p / 100)
			return nil
		}, nil
	}

	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid position: %q", value)
	}
	return func(s site.Site) error {
		seeker, ok := site.SecondsSeeker(s.Events())
		if !ok {
			return fmt.Errorf("%s seeks by percentage, not seconds", s.Name())
		}
		seeker.SetPositionSeconds(seconds)
		return nil
	}, nil
}
