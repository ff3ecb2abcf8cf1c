package cmd

import (
	"github.com/nowplaying-cli/nowplaying/color"
	"github.com/nowplaying-cli/nowplaying/icon"
	"github.com/nowplaying-cli/nowplaying/playground"
	"github.com/nowplaying-cli/nowplaying/style"
	"github.com/nowplaying-cli/nowplaying/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(samplesCmd)
}

// samplesCmd manages the built-in demo pages.
var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Manage the built-in demo player pages",
}

func init() {
	samplesCmd.AddCommand(samplesListCmd)
}

var samplesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in demo pages",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range playground.Samples() {
			p, err := playground.LoadSample(name)
			handleErr(err)
			cmd.Printf("%s %s\n", style.Fg(color.Purple)(name), style.Faint(p.Page.URL().String()))
		}
	},
}

func init() {
	samplesCmd.AddCommand(samplesExportCmd)
	samplesExportCmd.Flags().BoolP("force", "f", false, "Overwrite pages that were exported before")
	samplesExportCmd.Flags().StringP("dir", "D", "", "Directory to export to (defaults to the fixtures directory)")
}

var samplesExportCmd = &cobra.Command{
	Use:   "export [name...]",
	Short: "Copy demo pages and their fixtures out for editing",
	Long: `Copy demo pages and their fixtures into the fixtures directory, where pages
given by bare name are looked up. Without names every sample is exported.`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Without(playground.Samples(), args...), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		names := args
		if len(names) == 0 {
			names = playground.Samples()
		}

		dir := lo.Must(cmd.Flags().GetString("dir"))
		if dir == "" {
			dir = where.Fixtures()
		}
		force := lo.Must(cmd.Flags().GetBool("force"))

		for _, name := range names {
			written, err := playground.Export(name, dir, force)
			handleErr(err)
			for _, path := range written {
				cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
			}
		}
	},
}
