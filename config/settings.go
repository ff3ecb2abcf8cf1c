package config

import (
	"time"

	"github.com/nowplaying-cli/nowplaying/key"
	"github.com/spf13/viper"
)

// Settings is the subset of configuration the site adapters consult at runtime.
type Settings struct {
	UpdateFrequencyMs2 int
	SkipChapters       bool
}

// PollInterval is the adapter-local refresh cadence: half of the base update frequency.
func (s Settings) PollInterval() time.Duration {
	ms := s.UpdateFrequencyMs2 / 2
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// Load reads the current adapter settings from viper.
func Load() Settings {
	return Settings{
		UpdateFrequencyMs2: viper.GetInt(key.UpdateFrequencyMs2),
		SkipChapters:       viper.GetBool(key.YouTubeSkipChapters),
	}
}
