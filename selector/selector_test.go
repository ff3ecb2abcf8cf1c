package selector

import (
	"errors"
	"math"
	"testing"

	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const page = `<html><body>
<div class="middle-controls-buttons">
  <yt-button-shape aria-pressed="false"><button>down</button></yt-button-shape>
  <yt-button-shape aria-pressed="true"><button>up</button></yt-button-shape>
</div>
<span class="empty"></span>
<span class="count">0</span>
</body></html>`

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("A plain selector means the first match", func() {
			So(Parse("sel"), ShouldResemble, Spec{Raw: "sel", CSS: "sel", Index: 0})
		})

		Convey("A wrapped selector carries its index", func() {
			So(Parse("(sel)[2]"), ShouldResemble, Spec{Raw: "(sel)[2]", CSS: "sel", Index: 2})
			So(Parse("(.middle-controls-buttons button)[1]").CSS, ShouldEqual, ".middle-controls-buttons button")
		})

		Convey("Malformed indices become 0", func() {
			So(Parse("(sel)[x]").Index, ShouldEqual, 0)
			So(Parse("(sel)[x]").CSS, ShouldEqual, "sel")
			So(Parse("(sel)[-3]").Index, ShouldEqual, 0)
			So(Parse("(sel)[]").Index, ShouldEqual, 0)
		})

		Convey("Anything else is taken literally", func() {
			So(Parse("(sel)").CSS, ShouldEqual, "(sel)")
			So(Parse("").CSS, ShouldEqual, "")
		})

		Convey("String round-trips the canonical form", func() {
			So(Parse("(a b)[3]").String(), ShouldEqual, "(a b)[3]")
			So(Parse("a b").String(), ShouldEqual, "a b")
		})

		Convey("Valid reports whether the CSS compiles", func() {
			So(Parse("#a button, #b button").Valid(), ShouldBeTrue)
			So(Parse("(div[[[)[1]").Valid(), ShouldBeFalse)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a page", t, func() {
		p := lo.Must(dom.ParseString(page, "https://music.youtube.com/watch?v=abc"))
		root := p.Root()
		pressed := func(el *dom.Element) (bool, error) {
			v, _ := el.Attr("aria-pressed")
			return v == "true", nil
		}

		Convey("Indexed matches are selected", func() {
			So(Resolve(root, ".middle-controls-buttons yt-button-shape", pressed, true), ShouldBeFalse)
			So(Resolve(root, "(.middle-controls-buttons yt-button-shape)[1]", pressed, false), ShouldBeTrue)
		})

		Convey("A nil scope returns the fallback without calling the extractor", func() {
			calls := 0
			got := Resolve(nil, "span", func(el *dom.Element) (string, error) {
				calls++
				return "x", nil
			}, "fallback")
			So(got, ShouldEqual, "fallback")
			So(calls, ShouldEqual, 0)
		})

		Convey("A missing match returns the fallback without calling the extractor", func() {
			calls := 0
			got := Resolve(root, "(span)[7]", func(el *dom.Element) (string, error) {
				calls++
				return "x", nil
			}, "fallback")
			So(got, ShouldEqual, "fallback")
			So(calls, ShouldEqual, 0)
		})

		Convey("Empty-equivalent results collapse to the fallback", func() {
			So(Resolve(root, ".empty", func(el *dom.Element) (string, error) { return el.Text(), nil }, "none"), ShouldEqual, "none")
			So(Resolve(root, ".count", func(el *dom.Element) (float64, error) { return math.NaN(), nil }, 42.0), ShouldEqual, 42.0)
			So(Resolve(root, ".count", func(el *dom.Element) (*int, error) { return nil, nil }, lo.ToPtr(7)), ShouldNotBeNil)
		})

		Convey("Zero and false are kept", func() {
			So(Resolve(root, ".count", func(el *dom.Element) (int, error) { return 0, nil }, 100), ShouldEqual, 0)
			So(Resolve(root, ".count", func(el *dom.Element) (bool, error) { return false, nil }, true), ShouldBeFalse)
		})

		Convey("Extractor errors and panics collapse to the fallback", func() {
			So(Resolve(root, ".count", func(el *dom.Element) (int, error) { return 1, errors.New("boom") }, 100), ShouldEqual, 100)
			So(Resolve(root, ".count", func(el *dom.Element) (int, error) { panic("boom") }, 100), ShouldEqual, 100)
		})

		Convey("Lookup exposes absence explicitly", func() {
			So(Lookup(root, ".nope", pressed).IsAbsent(), ShouldBeTrue)
			v, ok := Lookup(root, ".count", func(el *dom.Element) (string, error) { return el.Text(), nil }).Get()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "0")
		})

		Convey("Report behaves like Resolve", func() {
			So(Report(root, ".nope", pressed, true, "rating"), ShouldBeTrue)
			So(Report(root, "(.middle-controls-buttons yt-button-shape)[1]", pressed, false, "rating"), ShouldBeTrue)
		})
	})
}

func TestInvoke(t *testing.T) {
	Convey("Given a page", t, func() {
		p := lo.Must(dom.ParseString(page, "https://music.youtube.com/watch?v=abc"))

		Convey("The action may mutate the resolved element", func() {
			ran := Invoke(p.Root(), "(.middle-controls-buttons yt-button-shape)[0]", func(el *dom.Element) {
				el.SetAttr("aria-pressed", "true")
			}, "toggleThumbsDown")
			So(ran, ShouldBeTrue)
			So(p.First(`yt-button-shape[aria-pressed="true"]`), ShouldNotBeNil)
			So(p.Root().Find(`yt-button-shape[aria-pressed="true"]`), ShouldHaveLength, 2)
		})

		Convey("A missing target is a silent no-op", func() {
			calls := 0
			So(Invoke(p.Root(), ".repeat", func(*dom.Element) { calls++ }, "toggleRepeat"), ShouldBeFalse)
			So(Invoke(nil, ".repeat", func(*dom.Element) { calls++ }, ""), ShouldBeFalse)
			So(calls, ShouldEqual, 0)
		})
	})
}

func TestPresent(t *testing.T) {
	Convey("Present", t, func() {
		var nilSlice []int
		var nilErr error

		So(Present(""), ShouldBeFalse)
		So(Present(math.NaN()), ShouldBeFalse)
		So(Present(nilSlice), ShouldBeFalse)
		So(Present[*string](nil), ShouldBeFalse)
		So(Present(nilErr), ShouldBeFalse)

		So(Present(0), ShouldBeTrue)
		So(Present(false), ShouldBeTrue)
		So(Present(0.0), ShouldBeTrue)
		So(Present("x"), ShouldBeTrue)
		So(Present([]int{}), ShouldBeTrue)

		So(Collapse("").IsPresent(), ShouldBeFalse)
		So(Collapse(0).MustGet(), ShouldEqual, 0)
	})
}
