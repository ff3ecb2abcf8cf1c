package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/nowplaying-cli/nowplaying/inline"
	"github.com/nowplaying-cli/nowplaying/internal/ui"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/style"
	"github.com/nowplaying-cli/nowplaying/util"
)

const defaultInterval = 250 * time.Millisecond

// statefulBubble encapsulates the watch view state: the site being watched, its last captured
// info and the component models.
type statefulBubble struct {
	state state

	keymap *statefulKeymap

	spinnerC  spinner.Model
	progressC progress.Model
	helpC     help.Model
	notifier  *ui.Model

	ctx      context.Context
	site     site.Site
	interval time.Duration
	advance  func(time.Duration)

	info     inline.Info
	chapters *inline.Chapters

	lastError     error
	width, height int
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// capture reads the site once; the view only ever renders the captured values.
func (b *statefulBubble) capture() {
	b.info = inline.Capture(b.site.Info())
	b.chapters = inline.CaptureChapters(b.site)
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.progressC.Width = util.Max(b.width-14, 10)
	b.helpC.Width = b.width
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(ctx context.Context, options *Options) *statefulBubble {
	interval := options.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	bubble := statefulBubble{
		keymap:   newStatefulKeymap(),
		notifier: &ui.Model{},
		ctx:      ctx,
		site:     options.Site,
		interval: interval,
		advance:  options.Advance,
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.progressC = progress.New(
		progress.WithGradient(string(style.SecondaryColor), string(style.AccentColor)),
		progress.WithoutPercentage(),
	)

	bubble.setState(loadingState)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	} else {
		bubble.resize(80, 24)
	}

	return &bubble
}
