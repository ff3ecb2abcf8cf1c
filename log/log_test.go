package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nowplaying-cli/nowplaying/filesystem"
	"github.com/nowplaying-cli/nowplaying/key"
	"github.com/nowplaying-cli/nowplaying/where"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("Disabled logging creates nothing", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)

			Op("title", "should be dropped %d", 1)
		})

		Convey("Enabled logging creates today's file and applies the level", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			defer viper.Set(key.LogsWrite, false)

			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeTrue)
			So(Level(), ShouldEqual, logrus.DebugLevel)

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			exists, err := filesystem.API().Exists(path)
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)

			Op("rating", "like button missing")
			enabled = false
		})

		Convey("An unknown level falls back to info", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "chatty")
			defer viper.Set(key.LogsWrite, false)

			So(Setup(), ShouldBeNil)
			So(Level(), ShouldEqual, logrus.InfoLevel)
			enabled = false
		})
	})
}
