package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nowplaying-cli/nowplaying/config"
	"github.com/nowplaying-cli/nowplaying/cover"
	"github.com/nowplaying-cli/nowplaying/playground"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/site/youtube"
	"github.com/nowplaying-cli/nowplaying/site/ytmusic"
	"github.com/nowplaying-cli/nowplaying/util"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func watch(ctx context.Context, s site.Site, advance func(time.Duration)) *statefulBubble {
	site.Refresh(ctx, s)
	b := newBubble(ctx, &Options{Site: s, Interval: time.Second, Advance: advance})
	b.Update(tickMsg(time.Now()))
	return b
}

func TestWatchYouTube(t *testing.T) {
	Convey("Given the watch view on a YouTube page", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		p := lo.Must(playground.LoadSample("youtube-watch"))
		s := youtube.New(p.Page, p.Host, config.Settings{UpdateFrequencyMs2: 250, SkipChapters: true})

		var advanced time.Duration
		b := watch(ctx, s, func(d time.Duration) {
			advanced += d
			p.Advance(d)
		})

		Convey("The first tick shows the player", func() {
			So(b.state, ShouldEqual, watchState)
			So(advanced, ShouldEqual, time.Second)
			So(b.info.Position, ShouldEqual, "1:36")
			So(b.View(), ShouldContainSubstring, "Lofi Girl")
			So(b.View(), ShouldContainSubstring, "4 chapters")
		})

		Convey("Space toggles playback", func() {
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeySpace})
			So(cmd, ShouldNotBeNil)
			So(b.info.State, ShouldEqual, site.Paused.String())
		})

		Convey("Seeking moves by ten seconds", func() {
			b.Update(runes("l"))
			So(b.info.Position, ShouldEqual, "1:46")
			b.Update(tea.KeyMsg{Type: tea.KeyLeft})
			b.Update(tea.KeyMsg{Type: tea.KeyLeft})
			So(b.info.Position, ShouldEqual, "1:26")
		})

		Convey("Volume keys step by five", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyUp})
			So(b.info.Volume, ShouldEqual, 50)
			b.Update(runes("-"))
			b.Update(runes("-"))
			So(b.info.Volume, ShouldEqual, 40)
		})

		Convey("Like and dislike press the thumbs", func() {
			b.Update(runes("L"))
			So(b.info.Rating, ShouldEqual, int(site.RatingLiked))
			b.Update(runes("D"))
			So(b.info.Rating, ShouldEqual, int(site.RatingDisliked))
		})

		Convey("Next jumps to the next chapter", func() {
			b.Update(runes("n"))
			So(b.info.Position, ShouldEqual, "2:30")
		})

		Convey("q quits", func() {
			_, cmd := b.Update(runes("q"))
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
		})

		Convey("A cancelled context ends the watch", func() {
			cancel()
			b.Update(tickMsg(time.Now()))
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "Error")
		})
	})
}

func TestWatchMusic(t *testing.T) {
	Convey("Given the watch view on YouTube Music", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		p := lo.Must(playground.LoadSample("youtube-music"))
		s := ytmusic.New(p.Page, p.Host, p.Host, cover.Medium, config.Settings{UpdateFrequencyMs2: 250})
		b := watch(ctx, s, nil)

		Convey("Seeking goes through the progress bar", func() {
			b.Update(runes("l"))
			position, ok := util.ParseTimestamp(b.info.Position)
			So(ok, ShouldBeTrue)
			So(position, ShouldBeBetweenOrEqual, 51.0, 52.0)
		})

		Convey("There is no chapter line", func() {
			So(b.chapters, ShouldBeNil)
			So(b.View(), ShouldNotContainSubstring, "chapters")
		})
	})

	Convey("Given a player that is not ready yet", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		p := lo.Must(playground.LoadSample("youtube-music"))
		p.Host.SetMetadata(nil)
		s := ytmusic.New(p.Page, p.Host, p.Host, cover.Medium, config.Settings{UpdateFrequencyMs2: 250})
		b := watch(ctx, s, nil)

		So(b.state, ShouldEqual, loadingState)
		So(b.View(), ShouldContainSubstring, "Waiting for the player")

		b.Update(runes(" "))
		So(b.info.Title, ShouldBeEmpty)
	})
}
