package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/nowplaying-cli/nowplaying/style"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	playPause, next, previous,
	seekForward, seekBack,
	volumeUp, volumeDown,
	repeat, shuffle,
	thumbsUp, thumbsDown,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp(style.Fg(style.Peach)("space"), style.Fg(style.Peach)("play/pause")),
		),
		next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next"),
		),
		previous: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previous"),
		),
		seekForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "+10s"),
		),
		seekBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "-10s"),
		),
		volumeUp: key.NewBinding(
			key.WithKeys("up", "k", "+", "="),
			key.WithHelp("↑", "volume up"),
		),
		volumeDown: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓", "volume down"),
		),
		repeat: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "repeat"),
		),
		shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		thumbsUp: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "like"),
		),
		thumbsDown: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "dislike"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case watchState:
		return h(k.playPause, k.next, k.previous, k.showHelp, k.quit),
			h(k.playPause, k.next, k.previous, k.seekForward, k.seekBack, k.volumeUp, k.volumeDown,
				k.repeat, k.shuffle, k.thumbsUp, k.thumbsDown, k.quit)
	case errorState:
		return to2(h(k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
