package site

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// thumbs mimics a pair of mutually exclusive toggle buttons.
type thumbs struct {
	rating     Rating
	ups, downs int
	stopped    bool
}

func (t *thumbs) Player() string { return "fake" }
func (t *thumbs) State() StateMode { return Paused }
func (t *thumbs) Title() string { return "" }
func (t *thumbs) Artist() string { return "" }
func (t *thumbs) Album() string { return "" }
func (t *thumbs) Cover() string { return "" }
func (t *thumbs) Duration() string { return "0:00" }
func (t *thumbs) Position() string { return "0:00" }
func (t *thumbs) Volume() int { return 100 }
func (t *thumbs) Rating() Rating { return t.rating }
func (t *thumbs) Repeat() RepeatMode { return RepeatNone }
func (t *thumbs) Shuffle() bool { return false }
func (t *thumbs) TogglePlaying() {}
func (t *thumbs) Next() {}
func (t *thumbs) Previous() {}
func (t *thumbs) SetVolume(int) {}
func (t *thumbs) ToggleRepeat() {}
func (t *thumbs) ToggleShuffle() {}
func (t *thumbs) SetRating(r int) { LikeDislike(t, t, r) }
func (t *thumbs) SetPositionSeconds(float64) {}

func (t *thumbs) ToggleThumbsUp() {
	t.ups++
	if t.rating == RatingLiked {
		t.rating = RatingNone
	} else {
		t.rating = RatingLiked
	}
}

func (t *thumbs) ToggleThumbsDown() {
	t.downs++
	if t.rating == RatingDisliked {
		t.rating = RatingNone
	} else {
		t.rating = RatingDisliked
	}
}

func (t *thumbs) Name() string { return "fake" }
func (t *thumbs) Init(context.Context) {}
func (t *thumbs) Ready() bool { return true }
func (t *thumbs) Info() Info { return t }
func (t *thumbs) Events() Events { return t }
func (t *thumbs) Stop() { t.stopped = true }

func TestLikeDislike(t *testing.T) {
	Convey("Given unrated thumbs", t, func() {
		th := &thumbs{}

		Convey("Rating round-trips", func() {
			th.SetRating(5)
			So(th.Rating(), ShouldEqual, RatingLiked)
			th.SetRating(1)
			So(th.Rating(), ShouldEqual, RatingDisliked)
			th.SetRating(0)
			So(th.Rating(), ShouldEqual, RatingNone)
		})

		Convey("The middle of the scale is split", func() {
			th.SetRating(3)
			So(th.Rating(), ShouldEqual, RatingLiked)
			th.SetRating(2)
			So(th.Rating(), ShouldEqual, RatingDisliked)
		})

		Convey("Setting the current rating presses nothing", func() {
			th.SetRating(5)
			th.SetRating(4)
			So(th.ups, ShouldEqual, 1)
			th.SetRating(0)
			th.SetRating(0)
			So(th.ups, ShouldEqual, 2)
			So(th.downs, ShouldEqual, 0)
		})
	})
}

func TestCapabilities(t *testing.T) {
	Convey("Seekers are detected by type", t, func() {
		th := &thumbs{}
		_, ok := SecondsSeeker(th)
		So(ok, ShouldBeTrue)
		_, ok = PercentageSeeker(th)
		So(ok, ShouldBeFalse)
	})

	Convey("Stop reaches sites that support it", t, func() {
		th := &thumbs{}
		Stop(th)
		So(th.stopped, ShouldBeTrue)
	})

	Convey("Modes print their names", t, func() {
		So(Playing.String(), ShouldEqual, "PLAYING")
		So(RepeatOne.String(), ShouldEqual, "ONE")
		So(RatingDisliked.String(), ShouldEqual, "DISLIKED")
	})
}
