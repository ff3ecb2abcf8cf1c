package platform

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBiggest(t *testing.T) {
	Convey("BiggestThumbnail", t, func() {
		Convey("Picks the largest area", func() {
			url, ok := BiggestThumbnail([]Thumbnail{
				{URL: "a", Width: 120, Height: 90},
				{URL: "b", Width: 1280, Height: 720},
				{URL: "c", Width: 640, Height: 480},
			})
			So(ok, ShouldBeTrue)
			So(url, ShouldEqual, "b")
		})

		Convey("Skips entries without a URL", func() {
			url, ok := BiggestThumbnail([]Thumbnail{{Width: 9000, Height: 9000}, {URL: "small", Width: 1, Height: 1}})
			So(ok, ShouldBeTrue)
			So(url, ShouldEqual, "small")
		})

		Convey("Reports absence", func() {
			_, ok := BiggestThumbnail(nil)
			So(ok, ShouldBeFalse)
		})
	})

	Convey("BiggestArtwork", t, func() {
		Convey("Parses declared sizes", func() {
			src, ok := BiggestArtwork([]Artwork{
				{Src: "s", Sizes: "60x60"},
				{Src: "l", Sizes: "226x226 544X544"},
				{Src: "m", Sizes: "120x120"},
			})
			So(ok, ShouldBeTrue)
			So(src, ShouldEqual, "l")
		})

		Convey("Falls back to the first entry", func() {
			src, _ := BiggestArtwork([]Artwork{{Src: "first"}, {Src: "second", Sizes: "bogus"}})
			So(src, ShouldEqual, "first")
		})
	})
}

func TestMemory(t *testing.T) {
	Convey("Given an in-memory host", t, func() {
		m := NewMemory()
		ctx := context.Background()

		Convey("Volume starts unknown", func() {
			v, err := m.Volume(ctx)
			So(err, ShouldBeNil)
			So(v.IsAbsent(), ShouldBeTrue)
		})

		Convey("SetVolume is observed and mirrored", func() {
			mirrored := -1
			m.OnSetVolume = func(v int) { mirrored = v }

			So(m.SetVolume(ctx, 60), ShouldBeNil)
			v, _ := m.Volume(ctx)
			So(v.MustGet(), ShouldEqual, 60)
			So(mirrored, ShouldEqual, 60)
		})

		Convey("An unavailable host fails", func() {
			m.SetAvailable(false)
			_, err := m.YouTubeInfo(ctx)
			So(err, ShouldEqual, ErrUnavailable)
			So(m.SetVolume(ctx, 10), ShouldEqual, ErrUnavailable)
		})

		Convey("Latency honours cancellation", func() {
			m.SetLatency(time.Hour)
			ctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := m.YouTubeInfo(ctx)
			So(err, ShouldEqual, context.Canceled)
		})

		Convey("Metadata round-trips", func() {
			So(m.Metadata(), ShouldBeNil)
			m.SetMetadata(&MediaMetadata{Title: "Song"})
			So(m.Metadata().Title, ShouldEqual, "Song")
		})
	})
}
