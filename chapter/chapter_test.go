package chapter

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const watchURL = "https://www.youtube.com/watch?v=abc123"

func panel(target string, times ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<ytd-engagement-panel-section-list-renderer target-id="engagement-panel-macro-markers-%s-chapters">`, target)
	for _, t := range times {
		fmt.Fprintf(&b, `<ytd-macro-markers-list-item-renderer><a href="/watch?v=abc123&t=%s">chapter</a></ytd-macro-markers-list-item-renderer>`, t)
	}
	b.WriteString(`</ytd-engagement-panel-section-list-renderer>`)
	return b.String()
}

func comment(links ...string) string {
	var b strings.Builder
	b.WriteString(`<ytd-comment-thread-renderer><ytd-comment-renderer id="comment"><div id="content-text">`)
	for _, l := range links {
		fmt.Fprintf(&b, `<a href="%s">link</a>`, l)
	}
	b.WriteString(`</div></ytd-comment-renderer></ytd-comment-thread-renderer>`)
	return b.String()
}

func stamps(ts ...int) []string {
	return lo.Map(ts, func(t int, _ int) string {
		return fmt.Sprintf("/watch?v=abc123&t=%ds", t)
	})
}

func load(body ...string) (*dom.Element, *url.URL) {
	p := lo.Must(dom.ParseString("<html><body>"+strings.Join(body, "")+"</body></html>", watchURL))
	return p.Root(), p.URL()
}

func TestNormalize(t *testing.T) {
	Convey("Normalize sorts, dedupes and drops negatives", t, func() {
		So(Normalize([]int{90, 30, -1, 30, 150}), ShouldResemble, Timeline{30, 90, 150})
		So(Normalize(nil), ShouldBeEmpty)
	})

	Convey("Valid needs more than two boundaries", t, func() {
		So(Timeline{1, 2}.Valid(), ShouldBeFalse)
		So(Timeline{1, 2, 3}.Valid(), ShouldBeTrue)
	})
}

func TestFind(t *testing.T) {
	Convey("Given the timeline [30, 90, 150]", t, func() {
		tl := Timeline{30, 90, 150}

		Convey("Before the first boundary there is no previous", func() {
			So(tl.Find(29), ShouldResemble, Nearest{Previous: mo.None[int](), Next: mo.Some(30)})
		})

		Convey("Just past a boundary previous stays empty", func() {
			So(tl.Find(31), ShouldResemble, Nearest{Previous: mo.None[int](), Next: mo.Some(90)})
		})

		Convey("At 95 previous is 90, more than the hysteresis past it, not 30", func() {
			n := tl.Find(95)
			So(n.Previous.MustGet(), ShouldEqual, 90)
			So(n.Next.MustGet(), ShouldEqual, 150)
		})

		Convey("Inside the window previous targets the boundary before", func() {
			n := tl.Find(92)
			So(n.Previous.MustGet(), ShouldEqual, 30)
			So(n.Next.MustGet(), ShouldEqual, 150)
		})

		Convey("Past the last boundary there is no next", func() {
			So(tl.Find(200), ShouldResemble, Nearest{Previous: mo.Some(150), Next: mo.None[int]()})
		})

		Convey("Exactly on a boundary it is not next", func() {
			So(tl.Find(90).Next.MustGet(), ShouldEqual, 150)
		})
	})
}

func TestDiscover(t *testing.T) {
	Convey("Discover", t, func() {
		Convey("The description panel beats the comments", func() {
			root, u := load(
				comment(stamps(0, 60, 120, 180)...),
				panel("description", "0", "40", "80", "120", "160"),
			)
			tl, ok := Discover(root, u)
			So(ok, ShouldBeTrue)
			So(tl, ShouldResemble, Timeline{0, 40, 80, 120, 160})
		})

		Convey("Comments beat the auto-generated panel", func() {
			root, u := load(
				panel("auto", "0", "10", "20", "30"),
				comment(stamps(5, 15, 25)...),
			)
			tl, ok := Discover(root, u)
			So(ok, ShouldBeTrue)
			So(tl, ShouldResemble, Timeline{5, 15, 25})
		})

		Convey("The auto-generated panel is the last resort", func() {
			root, u := load(panel("auto", "0", "10s", "20"))
			tl, ok := Discover(root, u)
			So(ok, ShouldBeTrue)
			So(tl, ShouldResemble, Timeline{0, 10, 20})
		})

		Convey("Two timestamps are rejected and three accepted", func() {
			root, u := load(panel("description", "0", "60"))
			_, ok := Discover(root, u)
			So(ok, ShouldBeFalse)

			root, u = load(panel("description", "0", "60", "120"))
			tl, ok := Discover(root, u)
			So(ok, ShouldBeTrue)
			So(tl, ShouldHaveLength, 3)
		})

		Convey("A short source falls through to the next one", func() {
			root, u := load(
				panel("description", "0", "60"),
				panel("auto", "0", "30", "60"),
			)
			tl, ok := Discover(root, u)
			So(ok, ShouldBeTrue)
			So(tl, ShouldResemble, Timeline{0, 30, 60})
		})

		Convey("The shortest qualifying comment wins", func() {
			root, u := load(
				comment(stamps(0, 10, 20, 30, 40, 50)...),
				comment(stamps(1, 11)...),
				comment(stamps(0, 60, 120, 180)...),
			)
			tl, ok := Discover(root, u)
			So(ok, ShouldBeTrue)
			So(tl, ShouldResemble, Timeline{0, 60, 120, 180})
		})

		Convey("Equal comments go to the first one", func() {
			root, u := load(
				comment(stamps(1, 2, 3)...),
				comment(stamps(4, 5, 6)...),
			)
			tl, _ := Discover(root, u)
			So(tl, ShouldResemble, Timeline{1, 2, 3})
		})

		Convey("Comment links into another video are ignored", func() {
			root, u := load(comment(
				"/watch?v=other&t=10",
				"/watch?v=other&t=20",
				"/watch?v=abc123&t=30",
				"/watch?v=abc123&t=40",
				"/shorts/abc123?t=50",
			))
			_, ok := Discover(root, u)
			So(ok, ShouldBeFalse)
		})

		Convey("Malformed and negative timestamps are ignored", func() {
			root, u := load(panel("description", "x", "-5", "", "10", "20"))
			_, ok := Discover(root, u)
			So(ok, ShouldBeFalse)
		})

		Convey("Nothing is found on an empty page", func() {
			root, u := load()
			_, ok := Discover(root, u)
			So(ok, ShouldBeFalse)

			_, ok = Discover(nil, u)
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Sources are ranked", t, func() {
		names := lo.Map(Sources(), func(s Source, _ int) string { return s.Name })
		So(names, ShouldResemble, []string{"description", "comments", "auto"})
	})
}
