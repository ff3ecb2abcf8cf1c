package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given an empty notifier", t, func() {
		var m Model

		Convey("It leaves content alone", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("A notice is shown on the last line", func() {
			So(m.Update(Notify("liked")()), ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "liked")
			So(m.View("a\nb"), ShouldStartWith, "a\nb  ")
			So(m.View("a\nb"), ShouldContainSubstring, "liked")
		})

		Convey("Only the latest notice is cleared by its own timer", func() {
			m.Update(Notice("first"))
			m.Update(Notice("second"))

			m.Update(clearMsg{id: 1})
			So(m.Current(), ShouldEqual, "second")

			m.Update(clearMsg{id: 2})
			So(m.Current(), ShouldBeEmpty)
		})
	})
}
