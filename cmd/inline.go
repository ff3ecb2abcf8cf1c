package cmd

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/nowplaying-cli/nowplaying/filesystem"
	"github.com/nowplaying-cli/nowplaying/inline"
	"github.com/nowplaying-cli/nowplaying/playground"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/nowplaying-cli/nowplaying/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringArrayP("do", "d", []string{}, "Playback action to apply before reading the player, as name or name=value (repeatable)")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("chapters", "c", false, "Include the chapter timeline and the boundaries around the playhead")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("do", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return inline.ActionNames(), cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd reads and drives a player page once without the interactive view.
var inlineCmd = &cobra.Command{
	Use:   "inline [page]",
	Short: "Read and control a player page once, in scriptable inline mode",
	Long: `Attach to a player page, apply the given actions in order and print what the player reports afterwards.

Actions:
  ` + strings.Join(inline.ActionNames(), "\n  ") + `

volume and rating take a number (rating 0 clears the thumbs, 1-2 dislikes, 4-5 likes).
seek takes seconds, or a percentage such as 50% on players that only seek by fraction.`,
	Example:           "nowplaying inline youtube-watch --do play-pause --do volume=30 --json",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionSamples,
	Run: func(cmd *cobra.Command, args []string) {
		actions := lo.Map(lo.Must(cmd.Flags().GetStringArray("do")), func(description string, _ int) inline.Action {
			action, err := inline.ParseAction(description)
			handleErr(err)
			return action
		})

		o, err := openSite(cmd, args)
		handleErr(err)
		defer site.Stop(o.site)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		}

		options := &inline.Options{
			Out:      writer,
			Site:     o.site,
			URL:      o.url,
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Chapters: lo.Must(cmd.Flags().GetBool("chapters")),
			Actions:  actions,
		}
		handleErr(inline.Run(cmd.Context(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("playground", "p", false, "Generate the JSON Schema for playground fixture files instead")
}

// inlineSchemaCmd generates JSON schemas for the inline output and the fixture format.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		var v any = &inline.Output{}
		if lo.Must(cmd.Flags().GetBool("playground")) {
			v = &playground.Fixture{}
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(inline.Schema(v)))
	},
}
