package cmd

import (
	"fmt"

	"github.com/nowplaying-cli/nowplaying/color"
	"github.com/nowplaying-cli/nowplaying/filesystem"
	"github.com/nowplaying-cli/nowplaying/icon"
	"github.com/nowplaying-cli/nowplaying/style"
	"github.com/nowplaying-cli/nowplaying/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is a file or directory the clear command can remove.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cover cache", "covers", mo.Some("c"), where.Covers},
	{"release cache", "releases", mo.Some("r"), where.Releases},
	{"logs", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
	clearCmd.Flags().BoolP("all", "a", false, "clear everything above")
}

// clearCmd removes cached and generated files.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached and generated application files",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		var anyCleared bool
		for _, target := range clearTargets {
			if !all && !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			handleErr(filesystem.API().RemoveAll(target.location()))
			cmd.Printf("%s %s cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)), target.name)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
