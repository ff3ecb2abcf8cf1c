package site

// StateMode is the playback state.
type StateMode int

const (
	Stopped StateMode = iota
	Playing
	Paused
)

func (s StateMode) String() string {
	switch s {
	case Playing:
		return "PLAYING"
	case Paused:
		return "PAUSED"
	default:
		return "STOPPED"
	}
}

// RepeatMode is the repeat setting.
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatAll
	RepeatOne
)

func (r RepeatMode) String() string {
	switch r {
	case RepeatAll:
		return "ALL"
	case RepeatOne:
		return "ONE"
	default:
		return "NONE"
	}
}

// Rating is the thumbs state collapsed to a five-point scale.
type Rating int

const (
	RatingNone     Rating = 0
	RatingDisliked Rating = 1
	RatingLiked    Rating = 5
)

func (r Rating) String() string {
	switch r {
	case RatingLiked:
		return "LIKED"
	case RatingDisliked:
		return "DISLIKED"
	default:
		return "NONE"
	}
}
