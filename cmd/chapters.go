package cmd

import (
	"fmt"
	"strings"

	"github.com/nowplaying-cli/nowplaying/chapter"
	"github.com/nowplaying-cli/nowplaying/color"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/style"
	"github.com/nowplaying-cli/nowplaying/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chaptersCmd)

	chaptersCmd.Flags().Float64P("position", "p", -1, "Playhead position in seconds (defaults to the media element's current time)")
	chaptersCmd.Flags().BoolP("sources", "s", false, "Show what every chapter source yields instead of the chosen timeline")
}

// chaptersCmd prints the chapter timeline discovered on a watch page.
var chaptersCmd = &cobra.Command{
	Use:               "chapters [page]",
	Short:             "Show the chapter boundaries found on a YouTube watch page",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionSamples,
	Run: func(cmd *cobra.Command, args []string) {
		o, err := openSite(cmd, args)
		handleErr(err)
		defer site.Stop(o.site)

		root, current := o.playground.Page.Root(), o.playground.Page.URL()

		if lo.Must(cmd.Flags().GetBool("sources")) {
			for _, source := range chapter.Sources() {
				timeline, ok := source.Find(root, current)
				cmd.Printf("%s: %s\n", style.Fg(color.Purple)(source.Name), describeTimeline(timeline, ok))
			}
			return
		}

		timeline, ok := chapter.Discover(root, current)
		if !ok {
			cmd.Println(style.Faint("no chapters"))
			return
		}

		position := lo.Must(cmd.Flags().GetFloat64("position"))
		if position < 0 {
			if m, ok := o.playground.Media(); ok {
				position = m.CurrentTime()
			} else {
				position = 0
			}
		}

		nearest := timeline.Find(position)
		cmd.Println(describeTimeline(timeline, true))
		cmd.Printf("%s %s\n", style.Faint("at      "), util.FormatSeconds(position))
		cmd.Printf("%s %s\n", style.Faint("previous"), describeBoundary(nearest.Previous))
		cmd.Printf("%s %s\n", style.Faint("next    "), describeBoundary(nearest.Next))
	},
}

func describeTimeline(timeline chapter.Timeline, ok bool) string {
	if !ok {
		return style.Faint("none")
	}
	return strings.Join(lo.Map(timeline, func(t int, _ int) string {
		return util.FormatSeconds(float64(t))
	}), " ")
}

func describeBoundary(boundary mo.Option[int]) string {
	if b, ok := boundary.Get(); ok {
		return fmt.Sprintf("%s (%ds)", util.FormatSeconds(float64(b)), b)
	}
	return style.Faint("none")
}
