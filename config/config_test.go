package config

import (
	"testing"
	"time"

	"github.com/nowplaying-cli/nowplaying/filesystem"
	"github.com/nowplaying-cli/nowplaying/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("youtube.skip_chapters")
			So(result, ShouldEqual, "youtube_skip_chapters")
		})

		Convey("Env should carry the application prefix", func() {
			f := Default[key.UpdateFrequencyMs2]
			So(f.Env(), ShouldEqual, "NOWPLAYING_UPDATE_FREQUENCY_MS2")
		})
	})
}

func TestSettings(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		_ = Setup()

		Convey("Load reflects the registered defaults", func() {
			s := Load()
			So(s.UpdateFrequencyMs2, ShouldEqual, 250)
			So(s.SkipChapters, ShouldBeTrue)
		})

		Convey("The poll interval is half the update frequency", func() {
			So(Settings{UpdateFrequencyMs2: 250}.PollInterval(), ShouldEqual, 125*time.Millisecond)
		})

		Convey("The poll interval never drops to zero", func() {
			So(Settings{UpdateFrequencyMs2: 1}.PollInterval(), ShouldEqual, time.Millisecond)
			So(Settings{}.PollInterval(), ShouldEqual, time.Millisecond)
		})

		Convey("Overrides are picked up on the next Load", func() {
			viper.Set(key.YouTubeSkipChapters, false)
			defer viper.Set(key.YouTubeSkipChapters, true)
			So(Load().SkipChapters, ShouldBeFalse)
		})
	})
}
