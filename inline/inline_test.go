package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/nowplaying-cli/nowplaying/config"
	"github.com/nowplaying-cli/nowplaying/cover"
	"github.com/nowplaying-cli/nowplaying/playground"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/site/youtube"
	"github.com/nowplaying-cli/nowplaying/site/ytmusic"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func watchPage() site.Site {
	p := lo.Must(playground.LoadSample("youtube-watch"))
	return youtube.New(p.Page, p.Host, config.Settings{UpdateFrequencyMs2: 250, SkipChapters: true})
}

func musicPage() site.Site {
	p := lo.Must(playground.LoadSample("youtube-music"))
	return ytmusic.New(p.Page, p.Host, p.Host, cover.Medium, config.Settings{UpdateFrequencyMs2: 250})
}

func run(options *Options) (Output, error) {
	var buf bytes.Buffer
	options.Out = &buf
	options.Json = true

	if err := Run(context.Background(), options); err != nil {
		return Output{}, err
	}

	var output Output
	err := json.Unmarshal(buf.Bytes(), &output)
	return output, err
}

func TestParseAction(t *testing.T) {
	Convey("ParseAction", t, func() {
		Convey("Should accept every listed action", func() {
			for _, name := range ActionNames() {
				value := ""
				switch name {
				case "volume", "rating", "seek":
					value = "=1"
				}
				a, err := ParseAction(name + value)
				So(err, ShouldBeNil)
				So(a.Name, ShouldEqual, name)
			}
		})

		Convey("Should reject unknown actions and bad values", func() {
			_, err := ParseAction("rewind")
			So(err, ShouldNotBeNil)
			_, err = ParseAction("volume=loud")
			So(err, ShouldNotBeNil)
			_, err = ParseAction("seek=half%")
			So(err, ShouldNotBeNil)
		})

		Convey("Should render back to its description", func() {
			a := lo.Must(ParseAction(" Volume = 40 "))
			So(a.String(), ShouldEqual, "volume=40")
			So(lo.Must(ParseAction("next")).String(), ShouldEqual, "next")
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given the watch page", t, func() {
		s := watchPage()

		Convey("It reports the refreshed info", func() {
			output, err := run(&Options{Site: s, URL: "https://www.youtube.com/watch?v=jfKfPfyJRdk"})
			So(err, ShouldBeNil)
			So(output.Ready, ShouldBeTrue)
			So(output.Info.Player, ShouldEqual, "YouTube")
			So(output.Info.State, ShouldEqual, "PLAYING")
			So(output.Info.Title, ShouldNotBeEmpty)
			So(output.Info.Position, ShouldEqual, "1:35")
			So(output.Chapters, ShouldBeNil)
		})

		Convey("Actions apply in order before the output", func() {
			actions := lo.Map([]string{"play-pause", "volume=30", "rating=5", "seek=61"}, func(d string, _ int) Action {
				return lo.Must(ParseAction(d))
			})
			output, err := run(&Options{Site: s, Actions: actions})
			So(err, ShouldBeNil)
			So(output.Info.State, ShouldEqual, "PAUSED")
			So(output.Info.Volume, ShouldEqual, 30)
			So(output.Info.Rating, ShouldEqual, 5)
			So(output.Info.Position, ShouldEqual, "1:01")
			So(output.Actions, ShouldResemble, []string{"play-pause", "volume=30", "rating=5", "seek=61"})
		})

		Convey("Chapters are included on request", func() {
			output, err := run(&Options{Site: s, Chapters: true})
			So(err, ShouldBeNil)
			So(output.Chapters, ShouldNotBeNil)
			So(output.Chapters.Timeline, ShouldResemble, []int{0, 30, 90, 150})
			So(*output.Chapters.Previous, ShouldEqual, 90)
			So(*output.Chapters.Next, ShouldEqual, 150)
		})

		Convey("Seeking by percentage is refused", func() {
			_, err := run(&Options{Site: s, Actions: []Action{lo.Must(ParseAction("seek=50%"))}})
			So(err, ShouldNotBeNil)
		})

		Convey("Text output lists every field", func() {
			var buf bytes.Buffer
			So(Run(context.Background(), &Options{Site: s, Out: &buf}), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Position:")
			So(buf.String(), ShouldContainSubstring, "1:35 / 4:00")
		})
	})

	Convey("Given the music player", t, func() {
		s := musicPage()

		Convey("The cover is resolved before the output is written", func() {
			output, err := run(&Options{Site: s})
			So(err, ShouldBeNil)
			So(output.Info.Cover, ShouldEqual, "https://i.ytimg.com/vi/lYBUbBu4W08/mqdefault.jpg")
			So(output.Info.Volume, ShouldEqual, 80)
		})

		Convey("Seeking takes a percentage", func() {
			output, err := run(&Options{Site: s, Actions: []Action{lo.Must(ParseAction("seek=50%"))}})
			So(err, ShouldBeNil)
			So(output.Info.Position, ShouldEqual, "1:46")
		})
	})

	Convey("Run without a site fails", t, func() {
		So(Run(context.Background(), &Options{}), ShouldNotBeNil)
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema describes the output", t, func() {
		data, err := json.Marshal(Schema(&Output{}))
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, `"volume"`)
		So(string(data), ShouldContainSubstring, `"chapters"`)
	})
}
