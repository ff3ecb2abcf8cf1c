package playground

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSamples(t *testing.T) {
	Convey("Every sample loads", t, func() {
		So(Samples(), ShouldResemble, []string{"youtube-music", "youtube-shorts", "youtube-watch"})

		for _, name := range Samples() {
			p, err := LoadSample(name)
			So(err, ShouldBeNil)
			_, ok := p.Media()
			So(ok, ShouldBeTrue)
		}

		_, err := LoadSample("nope")
		So(err, ShouldNotBeNil)
	})
}

func TestBehaviours(t *testing.T) {
	Convey("Given the YouTube Music sample", t, func() {
		p := lo.Must(LoadSample("youtube-music"))
		m, _ := p.Media()

		Convey("The fixture sets up the media element", func() {
			So(m.CurrentTime(), ShouldEqual, 42)
			So(m.Duration(), ShouldEqual, 213)
			So(m.Paused(), ShouldBeFalse)
			So(m.Volume(), ShouldAlmostEqual, 0.8)
			So(p.Page.First(musicTime).Text(), ShouldEqual, "0:42 / 3:33")
		})

		Convey("Thumbs are exclusive", func() {
			like := p.Page.Root().Find(".middle-controls-buttons button")[1]
			dislike := p.Page.Root().Find(".middle-controls-buttons button")[0]

			like.Click()
			So(pressed(like.Closest("[aria-pressed]")), ShouldBeTrue)

			dislike.Click()
			So(pressed(dislike.Closest("[aria-pressed]")), ShouldBeTrue)
			So(pressed(like.Closest("[aria-pressed]")), ShouldBeFalse)

			dislike.Click()
			So(pressed(dislike.Closest("[aria-pressed]")), ShouldBeFalse)
		})

		Convey("Play/pause and mute toggle the media", func() {
			p.Page.First(musicPlayPause).Click()
			So(m.Paused(), ShouldBeTrue)
			p.Page.First(musicVolume).Click()
			So(m.Muted(), ShouldBeTrue)
		})

		Convey("Repeat cycles through its modes", func() {
			bar := p.Page.First(musicBar)
			for _, want := range []string{"ALL", "ONE", "NONE"} {
				p.Page.First(musicRepeat).Click()
				mode, _ := bar.Attr("repeat-mode_")
				So(mode, ShouldEqual, want)
			}
		})

		Convey("Pressing the progress bar seeks", func() {
			bar := p.Page.First(musicProgress)
			bar.Dispatch(dom.Event{Kind: dom.MouseDown, ClientX: 500, ClientY: 2})
			So(m.CurrentTime(), ShouldAlmostEqual, 106.5)
			So(p.Page.First(musicTime).Text(), ShouldEqual, "1:46 / 3:33")
		})

		Convey("Advance moves a playing element forward", func() {
			p.Advance(3 * time.Second)
			So(m.CurrentTime(), ShouldAlmostEqual, 45)

			p.Advance(time.Hour)
			So(m.CurrentTime(), ShouldEqual, 213)
			So(m.Paused(), ShouldBeTrue)
		})
	})

	Convey("Given the YouTube watch sample", t, func() {
		p := lo.Must(LoadSample("youtube-watch"))
		m, _ := p.Media()

		Convey("The loop button cycles playlist, video and off", func() {
			btn := p.Page.First(ytLoopButton)
			icon := p.Page.First(ytLoopIcon)

			btn.Click()
			d, _ := icon.Attr("d")
			So(d, ShouldEqual, constant.YouTubeLoopPlaylistPath)
			So(m.Loop(), ShouldBeFalse)

			btn.Click()
			So(m.Loop(), ShouldBeTrue)

			btn.Click()
			So(m.Loop(), ShouldBeFalse)
		})

		Convey("Like and dislike are exclusive", func() {
			like := p.Page.First(ytLike)
			dislike := p.Page.First(ytDislike)
			like.Click()
			dislike.Click()
			So(pressed(like), ShouldBeFalse)
			So(pressed(dislike), ShouldBeTrue)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given pages on disk", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		dir := filepath.Join("pages")
		lo.Must0(filesystem.API().MkdirAll(dir, 0o755))
		page := filepath.Join(dir, "watch.html")
		lo.Must0(filesystem.API().WriteFile(page, []byte(`<video class="html5-main-video" src="x"></video>`), 0o644))

		Convey("A missing sibling fixture is an empty one", func() {
			p, err := Load(page, "")
			So(err, ShouldBeNil)
			So(p.Page.URL().String(), ShouldEqual, "")
		})

		Convey("The sibling fixture is picked up", func() {
			lo.Must0(filesystem.API().WriteFile(filepath.Join(dir, "watch.json"), []byte(`{"url": "https://www.youtube.com/watch?v=x"}`), 0o644))
			p, err := Load(page, "")
			So(err, ShouldBeNil)
			So(p.Page.URL().Host, ShouldEqual, "www.youtube.com")
		})

		Convey("An explicit fixture must exist", func() {
			_, err := Load(page, filepath.Join(dir, "nope.json"))
			So(err, ShouldNotBeNil)
		})

		Convey("A broken fixture is an error", func() {
			lo.Must0(filesystem.API().WriteFile(filepath.Join(dir, "watch.json"), []byte(`{`), 0o644))
			_, err := Load(page, "")
			So(err, ShouldNotBeNil)
		})

		Convey("Sample names load built-in pages", func() {
			p, err := Load("youtube-music", "")
			So(err, ShouldBeNil)
			So(p.Page.URL().Host, ShouldEqual, "music.youtube.com")
		})

		Convey("Missing pages are an error", func() {
			_, err := Load("missing.html", "")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestExport(t *testing.T) {
	Convey("Given an empty fixtures directory", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		dir := filepath.Join("exported")

		Convey("Export writes the page and its fixture", func() {
			written, err := Export("youtube-music", dir, false)
			So(err, ShouldBeNil)
			So(written, ShouldResemble, []string{
				filepath.Join(dir, "youtube-music.html"),
				filepath.Join(dir, "youtube-music.json"),
			})

			Convey("And the exported page loads like the sample", func() {
				p, err := Load(written[0], "")
				So(err, ShouldBeNil)
				So(p.Page.URL().Host, ShouldEqual, "music.youtube.com")
			})

			Convey("And exporting again needs overwrite", func() {
				_, err := Export("youtube-music", dir, false)
				So(err, ShouldNotBeNil)

				_, err = Export("youtube-music", dir, true)
				So(err, ShouldBeNil)
			})
		})

		Convey("Unknown samples are refused", func() {
			_, err := Export("nope", dir, false)
			So(err, ShouldNotBeNil)
		})
	})
}
