package cover

import (
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func thumbnailServer() (*httptest.Server, *atomic.Int32) {
	var hits atomic.Int32
	mux := http.NewServeMux()
	serve := func(w, h int) http.HandlerFunc {
		return func(rw http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			rw.Header().Set("Content-Type", "image/png")
			_ = png.Encode(rw, image.NewGray(image.Rect(0, 0, w, h)))
		}
	}
	mux.HandleFunc("/vi/big/maxresdefault.jpg", serve(1280, 720))
	mux.HandleFunc("/vi/placeholder/maxresdefault.jpg", serve(120, 90))
	mux.HandleFunc("/vi/broken/maxresdefault.jpg", func(rw http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = rw.Write([]byte("not an image"))
	})
	return httptest.NewServer(mux), &hits
}

func TestVideoID(t *testing.T) {
	Convey("VideoID", t, func() {
		id, ok := VideoID("https://i.ytimg.com/vi/abc/hqdefault.jpg")
		So(ok, ShouldBeTrue)
		So(id, ShouldEqual, "abc")

		_, ok = VideoID("https://lh3.googleusercontent.com/x=w544-h544")
		So(ok, ShouldBeFalse)

		So(URL("abc", constant.ThumbnailMaxRes), ShouldEqual, "https://i.ytimg.com/vi/abc/maxresdefault.jpg")
	})
}

func TestHTTPProber(t *testing.T) {
	Convey("Given a thumbnail host", t, func() {
		srv, _ := thumbnailServer()
		defer srv.Close()
		p := &HTTPProber{Client: srv.Client(), Host: srv.URL}
		ctx := context.Background()

		Convey("A tall image resolves to max resolution", func() {
			link, err := p.Probe(ctx, "big")
			So(err, ShouldBeNil)
			So(link, ShouldEqual, URL("big", constant.ThumbnailMaxRes))
		})

		Convey("A placeholder resolves to medium", func() {
			link, err := p.Probe(ctx, "placeholder")
			So(err, ShouldBeNil)
			So(link, ShouldEqual, URL("placeholder", constant.ThumbnailMedium))
		})

		Convey("Missing and undecodable images resolve to medium", func() {
			link, _ := p.Probe(ctx, "missing")
			So(link, ShouldEqual, URL("missing", constant.ThumbnailMedium))
			link, _ = p.Probe(ctx, "broken")
			So(link, ShouldEqual, URL("broken", constant.ThumbnailMedium))
		})

		Convey("A cancelled probe fails", func() {
			ctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := p.Probe(ctx, "big")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCached(t *testing.T) {
	Convey("Given a cached prober", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		srv, hits := thumbnailServer()
		defer srv.Close()

		c := NewCached(&HTTPProber{Client: srv.Client(), Host: srv.URL}, filepath.Join("cache", "covers.json"), time.Hour)
		ctx := context.Background()

		Convey("The second probe for a video is served from the cache", func() {
			first, err := c.Probe(ctx, "big")
			So(err, ShouldBeNil)
			second, err := c.Probe(ctx, "big")
			So(err, ShouldBeNil)

			So(second, ShouldEqual, first)
			So(hits.Load(), ShouldEqual, 1)
		})

		Convey("Failures are not cached", func() {
			calls := 0
			failing := NewCached(Func(func(ctx context.Context, id string) (string, error) {
				calls++
				return "", context.Canceled
			}), filepath.Join("cache", "failing.json"), time.Hour)

			_, err := failing.Probe(ctx, "x")
			So(err, ShouldNotBeNil)
			_, _ = failing.Probe(ctx, "x")
			So(calls, ShouldEqual, 2)
		})
	})
}
