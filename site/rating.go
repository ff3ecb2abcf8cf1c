package site

// LikeDislike presses the thumbs controls so that info reports the rating closest to target.
// Three and above means liked, one and two disliked, and zero or below clears the rating. A
// control that is already in the wanted state is left alone, since pressing it again would undo it.
func LikeDislike(info Info, events Events, target int) {
	current := info.Rating()

	switch {
	case target >= 3:
		if current != RatingLiked {
			events.ToggleThumbsUp()
		}
	case target >= 1:
		if current != RatingDisliked {
			events.ToggleThumbsDown()
		}
	default:
		switch current {
		case RatingLiked:
			events.ToggleThumbsUp()
		case RatingDisliked:
			events.ToggleThumbsDown()
		}
	}
}
