package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("ReadOnly refuses writes", func() {
			SetMemMapFs()
			So(API().WriteFile("/page.html", []byte("<html></html>"), 0o644), ShouldBeNil)

			ro := ReadOnly()
			data, err := ro.ReadFile("/page.html")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "<html></html>")
			So(ro.WriteFile("/other.html", nil, 0o644), ShouldNotBeNil)
		})
	})
}
