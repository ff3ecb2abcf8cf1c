// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/nowplaying-cli/nowplaying/log"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/samber/lo"
)

// waiter is implemented by sites that resolve some fields in the background.
type waiter interface {
	Wait()
}

// Run refreshes the site once, applies the actions in order and writes what the site reports
// afterwards.
func Run(ctx context.Context, options *Options) error {
	if options.Site == nil {
		return errors.New("no site")
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}

	s := options.Site
	site.Refresh(ctx, s)

	for _, action := range options.Actions {
		log.Infof("applying %s to %s", action, s.Name())
		if err := action.Apply(s); err != nil {
			return fmt.Errorf("action %s: %w", action, err)
		}
	}
	if len(options.Actions) > 0 {
		site.Refresh(ctx, s)
	}

	output := capture(s, options)

	if options.Json {
		return writeJson(options.Out, output)
	}
	return writeText(options.Out, output)
}

func capture(s site.Site, options *Options) *Output {
	// the first cover read may start a background lookup
	_ = s.Info().Cover()
	if w, ok := s.(waiter); ok {
		w.Wait()
	}

	output := &Output{
		URL:   options.URL,
		Ready: s.Ready(),
		Actions: lo.Map(options.Actions, func(a Action, _ int) string {
			return a.String()
		}),
		Info: Capture(s.Info()),
	}
	if options.Chapters {
		output.Chapters = CaptureChapters(s)
	}
	return output
}

func writeJson(out io.Writer, output *Output) error {
	data, err := asJson(output)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func writeText(out io.Writer, output *Output) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	info := output.Info

	rows := [][2]string{
		{"Player", info.Player},
		{"State", info.State},
		{"Title", info.Title},
		{"Artist", info.Artist},
		{"Album", info.Album},
		{"Cover", info.Cover},
		{"Position", info.Position + " / " + info.Duration},
		{"Volume", fmt.Sprint(info.Volume)},
		{"Rating", fmt.Sprint(info.Rating)},
		{"Repeat", info.Repeat},
		{"Shuffle", fmt.Sprint(info.Shuffle)},
	}

	if c := output.Chapters; c != nil {
		rows = append(rows, [2]string{"Chapters", strings.Join(lo.Map(c.Timeline, func(t int, _ int) string {
			return fmt.Sprint(t)
		}), " ")})
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return w.Flush()
}
