package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/nowplaying-cli/nowplaying/icon"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/style"
	"github.com/nowplaying-cli/nowplaying/util"
	"github.com/samber/lo"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case watchState:
		output = b.viewWatch()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title(b.site.Name()),
			"",
			b.spinnerC.View() + " Waiting for the player",
		},
	)
}

func (b *statefulBubble) viewWatch() string {
	info := b.info

	title := info.Title
	if title == "" {
		title = style.Faint("Nothing playing")
	}

	lines := []string{
		style.Title(info.Player),
		"",
		stateIcon(info.State) + " " + style.Bold(title),
	}
	lines = append(lines, strings.Split(wordwrap.String(b.byline(), util.Max(b.width, 1)), "\n")...)
	lines = append(lines,
		"",
		b.progressLine(),
		b.statusLine(),
	)

	if c := b.chapters; c != nil {
		lines = append(lines, "", b.chapterLine(c.Timeline, c.Previous, c.Next))
	}

	if info.Cover != "" {
		lines = append(lines, "", style.Faint(truncate.StringWithTail(info.Cover, uint(util.Max(b.width, 4)), "…")))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) byline() string {
	parts := lo.Compact([]string{b.info.Artist, b.info.Album})
	return style.Fg(style.SecondaryColor)(strings.Join(parts, " · "))
}

func (b *statefulBubble) progressLine() string {
	position, _ := util.ParseTimestamp(b.info.Position)
	duration, _ := util.ParseTimestamp(b.info.Duration)

	var fraction float64
	if duration > 0 {
		fraction = util.Clamp(position/duration, 0, 1)
	}

	return fmt.Sprintf("%s %s", b.progressC.ViewAs(fraction), style.Faint(b.info.Position+" / "+b.info.Duration))
}

func (b *statefulBubble) statusLine() string {
	info := b.info

	volume := icon.Get(icon.Volume)
	if info.Volume == 0 {
		volume = icon.Get(icon.Muted)
	}

	repeat := style.Toggle(icon.Get(icon.RepeatAll), false)
	switch info.Repeat {
	case site.RepeatAll.String():
		repeat = style.Toggle(icon.Get(icon.RepeatAll), true)
	case site.RepeatOne.String():
		repeat = style.Toggle(icon.Get(icon.RepeatOne), true)
	}

	parts := []string{
		fmt.Sprintf("%s %d%%", volume, info.Volume),
		repeat,
		style.Toggle(icon.Get(icon.Shuffle), info.Shuffle),
		style.Toggle(icon.Get(icon.Liked), info.Rating == int(site.RatingLiked)),
		style.Toggle(icon.Get(icon.Disliked), info.Rating == int(site.RatingDisliked)),
	}
	return strings.Join(parts, "  ")
}

// chapterLine lists the chapter starts and marks the ones next and previous jump to.
func (b *statefulBubble) chapterLine(timeline []int, previous, next *int) string {
	stamps := lo.Map(timeline, func(t int, _ int) string {
		stamp := util.FormatSeconds(float64(t))
		switch {
		case next != nil && *next == t:
			return style.Fg(style.AccentColor)(stamp)
		case previous != nil && *previous == t:
			return style.Fg(style.SecondaryColor)(stamp)
		default:
			return style.Faint(stamp)
		}
	})

	header := fmt.Sprintf("%s %s", icon.Get(icon.Chapter), util.Quantify(len(timeline), "chapter", "chapters"))
	return wordwrap.String(header+"  "+strings.Join(stamps, " "), util.Max(b.width, 1))
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " The watch stopped:",
			"",
			wrap.String(errorBody, util.Max(b.width, 1)),
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

func stateIcon(state string) string {
	switch state {
	case site.Playing.String():
		return icon.Get(icon.Playing)
	case site.Paused.String():
		return icon.Get(icon.Paused)
	default:
		return icon.Get(icon.Stopped)
	}
}
